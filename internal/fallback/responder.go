// Package fallback provides the deterministic responder used whenever the
// classifier cannot produce a timely or valid result. Respond is a pure,
// total function: it never fails, never blocks, and never calls out.
package fallback

import (
	"strings"

	"github.com/bizsakhi/sakhi/internal/model"
)

// Confidence is the fixed confidence attached to every fallback response.
const Confidence = 0.8

type category int

const (
	categoryGreeting category = iota
	categoryHelp
	categoryHowTo
	categoryDefault
)

// Categorizers run in order; the first keyword hit wins.
var categorizers = []struct {
	cat      category
	keywords []string
}{
	{categoryGreeting, []string{"hi", "hello", "hey", "नमस्ते", "हैलो", "வணக்கம்", "ഹലോ"}},
	{categoryHelp, []string{"help", "मदद", "உதவி", "സഹായം"}},
	{categoryHowTo, []string{"how", "कैसे", "எப்படி", "എങ്ങനെ"}},
}

var responses = map[category]map[model.Language]string{
	categoryGreeting: {
		model.LangEnglish:   "Hello! I'm Sakhi, your business assistant. I can help you track income, expenses, and inventory. Try saying 'income 500' or 'expense 200'!",
		model.LangHindi:     "नमस्ते! मैं सखी हूं, आपकी व्यापारिक सहायक। मैं आपकी आय, खर्च और इन्वेंटरी ट्रैक करने में मदद कर सकती हूं। 'आय 500' या 'खर्च 200' कहकर देखें!",
		model.LangTamil:     "வணக்கம்! நான் சகி, உங்கள் வணிக உதவியாளர். நான் உங்கள் வருமானம், செலவுகள் மற்றும் சரக்குகளை கண்காணிக்க உதவ முடியும். 'வருமானம் 500' அல்லது 'செலவு 200' என்று சொல்லி பாருங்கள்!",
		model.LangMalayalam: "ഹലോ! ഞാൻ സഖി, നിങ്ങളുടെ ബിസിനസ് അസിസ്റ്റന്റ്. എനിക്ക് നിങ്ങളുടെ വരുമാനം, ചെലവുകൾ, ഇൻവെന്ററി ട്രാക്ക് ചെയ്യാൻ സഹായിക്കാം. 'വരുമാനം 500' അല്ലെങ്കിൽ 'ചെലവ് 200' എന്ന് പറഞ്ഞു നോക്കൂ!",
	},
	categoryHelp: {
		model.LangEnglish:   "I can help you with:\n• Track income: 'income 500'\n• Track expenses: 'expense 200'\n• Add inventory: 'inventory rice 10kg'\n• Upload receipts for automatic processing\n• Clear data: 'clear all'",
		model.LangHindi:     "मैं इनमें आपकी मदद कर सकती हूं:\n• आय ट्रैक करें: 'आय 500'\n• खर्च ट्रैक करें: 'खर्च 200'\n• इन्वेंटरी जोड़ें: 'इन्वेंटरी चावल 10किलो'\n• रसीदें अपलोड करें\n• डेटा साफ करें: 'सब साफ'",
		model.LangTamil:     "நான் இவற்றில் உங்களுக்கு உதவ முடியும்:\n• வருமானம் கண்காணிக்க: 'வருமானம் 500'\n• செலவு கண்காணிக்க: 'செலவு 200'\n• சரக்கு சேர்க்க: 'சரக்கு அரிசி 10கிலோ'\n• ரசீதுகளை பதிவேற்றவும்\n• தரவு அழிக்க: 'அனைத்தும் அழி'",
		model.LangMalayalam: "എനിക്ക് ഇവയിൽ നിങ്ങളെ സഹായിക്കാൻ കഴിയും:\n• വരുമാനം ട്രാക്ക്: 'വരുമാനം 500'\n• ചെലവ് ട്രാക്ക്: 'ചെലവ് 200'\n• ഇൻവെന്ററി ചേർക്കുക: 'ഇൻവെന്ററി അരി 10കിലോ'\n• രസീതുകൾ അപ്‌ലോഡ് ചെയ്യുക\n• ഡാറ്റ മായ്ക്കുക: 'എല്ലാം മായ്ക്കുക'",
	},
	categoryHowTo: {
		model.LangEnglish:   "You can interact with me in simple ways:\n• Say 'income 1000' to add income\n• Say 'expense 500' to add expense\n• Upload receipt photos for automatic processing\n• Ask me about your business data anytime!",
		model.LangHindi:     "आप मुझसे आसान तरीकों से बात कर सकते हैं:\n• 'आय 1000' कहें आय जोड़ने के लिए\n• 'खर्च 500' कहें खर्च जोड़ने के लिए\n• रसीद की फोटो अपलोड करें\n• कभी भी अपने व्यापार के बारे में पूछें!",
		model.LangTamil:     "நீங்கள் என்னுடன் எளிய வழிகளில் பேசலாம்:\n• வருமானம் சேர்க்க 'வருமானம் 1000' என்று சொல்லுங்கள்\n• செலவு சேர்க்க 'செலவு 500' என்று சொல்லுங்கள்\n• ரசீது புகைப்படங்களை பதிவேற்றவும்\n• எப்போது வேண்டுமானாலும் உங்கள் வணிகத்தைப் பற்றி கேளுங்கள்!",
		model.LangMalayalam: "നിങ്ങൾക്ക് എന്നോട് ലളിതമായ രീതികളിൽ സംസാരിക്കാം:\n• വരുമാനം ചേർക്കാൻ 'വരുമാനം 1000' എന്ന് പറയുക\n• ചെലവ് ചേർക്കാൻ 'ചെലവ് 500' എന്ന് പറയുക\n• രസീത് ഫോട്ടോകൾ അപ്‌ലോഡ് ചെയ്യുക\n• എപ്പോൾ വേണമെങ്കിലും നിങ്ങളുടെ ബിസിനസിനെക്കുറിച്ച് ചോദിക്കുക!",
	},
	categoryDefault: {
		model.LangEnglish:   "I'm here to help with your business! Try: 'income 500', 'expense 200', or upload a receipt photo.",
		model.LangHindi:     "मैं आपके व्यापार में मदद के लिए यहाँ हूँ! कोशिश करें: 'आय 500', 'खर्च 200', या रसीद की फोटो अपलोड करें।",
		model.LangTamil:     "நான் உங்கள் வணிகத்திற்கு உதவ இங்கே இருக்கிறேன்! முயற்சி செய்யுங்கள்: 'வருமானம் 500', 'செலவு 200', அல்லது ரசீது புகைப்படம் பதிவேற்றவும்.",
		model.LangMalayalam: "ഞാൻ നിങ്ങളുടെ ബിസിനസിനെ സഹായിക്കാൻ ഇവിടെയുണ്ട്! ശ്രമിക്കുക: 'വരുമാനം 500', 'ചെലവ് 200', അല്ലെങ്കിൽ രസീത് ഫോട്ടോ അപ്‌ലോഡ് ചെയ്യുക.",
	},
}

// Respond categorizes the message (greeting before help before how-to
// before default) and returns the canned conversational result for the
// requested language.
func Respond(text string, lang model.Language) model.ClassificationResult {
	lowered := strings.ToLower(strings.TrimSpace(text))

	cat := categoryDefault
	for _, c := range categorizers {
		if containsAny(lowered, c.keywords) {
			cat = c.cat
			break
		}
	}

	byLang := responses[cat]
	response, ok := byLang[lang]
	if !ok {
		response = byLang[model.LangEnglish]
	}

	result := model.Conversational(response, Confidence)
	result.FallbackUsed = true
	return result
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
