package render

import (
	"strings"

	"github.com/bizsakhi/sakhi/internal/model"
)

// Key identifies one response template family.
type Key string

// Template keys.
const (
	KeyIncomeRecorded  Key = "income_recorded"
	KeyExpenseRecorded Key = "expense_recorded"
	KeyIncomeAdded     Key = "income_added"
	KeyExpenseAdded    Key = "expense_added"
	KeyInventoryAdded  Key = "inventory_added"

	KeyExpensesCleared Key = "expenses_cleared"
	KeyIncomeCleared   Key = "income_cleared"
	KeyChatCleared     Key = "chat_cleared"
	KeyAllCleared      Key = "all_cleared"

	KeyProfitSummary    Key = "profit_summary"
	KeyLossSummary      Key = "loss_summary"
	KeyBreakEvenSummary Key = "break_even_summary"

	KeyIncomeTotal       Key = "income_total"
	KeyIncomeNone        Key = "income_none"
	KeyExpenseTotal      Key = "expense_total"
	KeyExpenseNone       Key = "expense_none"
	KeyTodayIncomeTotal  Key = "today_income_total"
	KeyTodayIncomeNone   Key = "today_income_none"
	KeyTodayExpenseTotal Key = "today_expense_total"
	KeyTodayExpenseNone  Key = "today_expense_none"

	KeyAggregateUnavailable Key = "aggregate_unavailable"
	KeyNoValidTransactions  Key = "no_valid_transactions"
	KeyItemsConfirmed       Key = "items_confirmed"
	KeyGenericHelp          Key = "generic_help"
	KeyApology              Key = "apology"
)

// Values holds the interpolation values for one render call. Placeholders
// in templates are written as {name}.
type Values map[string]string

// genericDefault is rendered for unknown template keys; Render never fails.
const genericDefault = "I'm here to help with your business!"

var templates = map[Key]map[model.Language]string{
	KeyIncomeRecorded: {
		model.LangEnglish:   "✅ Income of ₹{amount} recorded successfully!",
		model.LangHindi:     "✅ ₹{amount} की आय सफलतापूर्वक दर्ज की गई!",
		model.LangTamil:     "✅ ₹{amount} வருமானம் வெற்றிகரமாக பதிவு செய்யப்பட்டது!",
		model.LangMalayalam: "✅ ₹{amount} വരുമാനം വിജയകരമായി രേഖപ്പെടുത്തി!",
	},
	KeyExpenseRecorded: {
		model.LangEnglish:   "✅ Expense of ₹{amount} recorded successfully!",
		model.LangHindi:     "✅ ₹{amount} का खर्च सफलतापूर्वक दर्ज किया गया!",
		model.LangTamil:     "✅ ₹{amount} செலவு வெற்றிகரமாக பதிவு செய்யப்பட்டது!",
		model.LangMalayalam: "✅ ₹{amount} ചെലവ് വിജയകരമായി രേഖപ്പെടുത്തി!",
	},
	KeyIncomeAdded: {
		model.LangEnglish:   "✅ Income of ₹{amount} added: {description}",
		model.LangHindi:     "✅ ₹{amount} की आय जोड़ी गई: {description}",
		model.LangTamil:     "✅ ₹{amount} வருமானம் சேர்க்கப்பட்டது: {description}",
		model.LangMalayalam: "✅ ₹{amount} വരുമാനം ചേർത്തു: {description}",
		model.LangTelugu:    "✅ ₹{amount} ఆదాయం జోడించబడింది: {description}",
		model.LangKannada:   "✅ ₹{amount} ಆದಾಯ ಸೇರಿಸಲಾಗಿದೆ: {description}",
	},
	KeyExpenseAdded: {
		model.LangEnglish:   "✅ Expense of ₹{amount} added: {description}",
		model.LangHindi:     "✅ ₹{amount} का खर्च जोड़ा गया: {description}",
		model.LangTamil:     "✅ ₹{amount} செலவு சேர்க்கப்பட்டது: {description}",
		model.LangMalayalam: "✅ ₹{amount} ചെലവ് ചേർത്തു: {description}",
	},
	KeyInventoryAdded: {
		model.LangEnglish: "✅ Added {quantity} {unit} of {product} to inventory",
		model.LangHindi:   "✅ {product} की {quantity} {unit} इन्वेंटरी में जोड़ी गई",
	},
	KeyExpensesCleared: {
		model.LangEnglish:   "✅ All expenses cleared successfully!",
		model.LangHindi:     "✅ सभी खर्च सफलतापूर्वक साफ कर दिए गए!",
		model.LangTamil:     "✅ அனைத்து செலவுகளும் வெற்றிகரமாக அழிக்கப்பட்டன!",
		model.LangMalayalam: "✅ എല്ലാ ചെലവുകളും വിജയകരമായി മായ്ച്ചു!",
	},
	KeyIncomeCleared: {
		model.LangEnglish:   "✅ All income cleared successfully!",
		model.LangHindi:     "✅ सभी आय सफलतापूर्वक साफ कर दी गई!",
		model.LangTamil:     "✅ அனைத்து வருமானமும் வெற்றிகரமாக அழிக்கப்பட்டது!",
		model.LangMalayalam: "✅ എല്ലാ വരുമാനവും വിജയകരമായി മായ്ച്ചു!",
	},
	KeyChatCleared: {
		model.LangEnglish: "✅ Chat history cleared successfully!",
		model.LangHindi:   "✅ चैट इतिहास सफलतापूर्वक साफ कर दिया गया!",
	},
	KeyAllCleared: {
		model.LangEnglish: "✅ All data cleared successfully!",
		model.LangHindi:   "✅ सभी डेटा सफलतापूर्वक साफ कर दिया गया!",
	},
	KeyProfitSummary: {
		model.LangEnglish:   "📊 Your business is profitable!\n\n💰 Total Income: {income}\n💸 Total Expenses: {expenses}\n✅ Net Profit: {net}\n📈 Profit Margin: {margin}\n\nCongratulations! Your business is doing well. 🎉",
		model.LangHindi:     "📊 आपका व्यापार लाभ में है!\n\n💰 कुल आय: {income}\n💸 कुल खर्च: {expenses}\n✅ शुद्ध लाभ: {net}\n📈 लाभ मार्जिन: {margin}\n\nबधाई हो! आपका व्यापार अच्छा चल रहा है। 🎉",
		model.LangTamil:     "📊 உங்கள் வணிகம் லாபத்தில் உள்ளது!\n\n💰 மொத்த வருமானம்: {income}\n💸 மொத்த செலவுகள்: {expenses}\n✅ நிகர லாபம்: {net}\n📈 லாப விகிதம்: {margin}\n\nவாழ்த்துகள்! உங்கள் வணிகம் நன்றாக நடந்து கொண்டிருக்கிறது। 🎉",
		model.LangMalayalam: "📊 നിങ്ങളുടെ ബിസിനസ്സ് ലാഭത്തിലാണ്!\n\n💰 മൊത്തം വരുമാനം: {income}\n💸 മൊത്തം ചെലവുകൾ: {expenses}\n✅ നെറ്റ് ലാഭം: {net}\n📈 ലാഭ മാർജിൻ: {margin}\n\nഅഭിനന്ദനങ്ങൾ! നിങ്ങളുടെ ബിസിനസ്സ് നന്നായി പോകുന്നു। 🎉",
	},
	KeyLossSummary: {
		model.LangEnglish:   "📊 Your business is showing a loss.\n\n💰 Total Income: {income}\n💸 Total Expenses: {expenses}\n❌ Net Loss: {net}\n📉 Loss Margin: {margin}\n\nSuggestion: Consider ways to reduce expenses or increase income.",
		model.LangHindi:     "📊 आपके व्यापार में हानि हो रही है।\n\n💰 कुल आय: {income}\n💸 कुल खर्च: {expenses}\n❌ शुद्ध हानि: {net}\n📉 हानि मार्जिन: {margin}\n\nसुझाव: खर्च कम करने या आय बढ़ाने के तरीकों पर विचार करें।",
		model.LangTamil:     "📊 உங்கள் வணிகத்தில் நஷ்டம் ஏற்பட்டுள்ளது।\n\n💰 மொத்த வருமானம்: {income}\n💸 மொத்த செலவுகள்: {expenses}\n❌ நிகர நஷ்டம்: {net}\n📉 நஷ்ட விகிதம்: {margin}\n\nபரிந்துரை: செலவுகளை குறைக்க அல்லது வருமானத்தை அதிகரிக்க வழிகளை பரிசீலிக்கவும்।",
		model.LangMalayalam: "📊 നിങ്ങളുടെ ബിസിനസ്സിൽ നഷ്ടം സംഭവിച്ചിരിക്കുന്നു।\n\n💰 മൊത്തം വരുമാനം: {income}\n💸 മൊത്തം ചെലവുകൾ: {expenses}\n❌ നെറ്റ് നഷ്ടം: {net}\n📉 നഷ്ട മാർജിൻ: {margin}\n\nനിർദ്ദേശം: ചെലവുകൾ കുറയ്ക്കാനോ വരുമാനം വർദ്ധിപ്പിക്കാനോ ഉള്ള വഴികൾ പരിഗണിക്കുക।",
	},
	KeyBreakEvenSummary: {
		model.LangEnglish:   "📊 Your business is at break-even.\n\n💰 Total Income: {income}\n💸 Total Expenses: {expenses}\n⚖️ Net Result: ₹0\n\nYou're neither in profit nor loss.",
		model.LangHindi:     "📊 आपका व्यापार ब्रेक-ईवन पर है।\n\n💰 कुल आय: {income}\n💸 कुल खर्च: {expenses}\n⚖️ शुद्ध परिणाम: ₹0\n\nआप न तो लाभ में हैं न हानि में।",
		model.LangTamil:     "📊 உங்கள் வணிகம் பிரேக்-ஈவன் நிலையில் உள்ளது।\n\n💰 மொத்த வருமானம்: {income}\n💸 மொத்த செலவுகள்: {expenses}\n⚖️ நிகர முடிவு: ₹0\n\nநீங்கள் லாபத்திலும் இல்லை நஷ்டத்திலும் இல்லை।",
		model.LangMalayalam: "📊 നിങ്ങളുടെ ബിസിനസ്സ് ബ്രേക്ക്-ഈവൻ നിലയിലാണ്।\n\n💰 മൊത്തം വരുമാനം: {income}\n💸 മൊത്തം ചെലവുകൾ: {expenses}\n⚖️ നെറ്റ് ഫലം: ₹0\n\nനിങ്ങൾ ലാഭത്തിലോ നഷ്ടത്തിലോ അല്ല।",
	},
	KeyIncomeTotal: {
		model.LangEnglish: "💰 Your total income: {total}\n📊 Total transactions: {count}\n\nThis is the sum of all your income entries.",
		model.LangHindi:   "💰 आपकी कुल आय: {total}\n📊 कुल लेन-देन: {count}\n\nयह आपके सभी income entries का योग है।",
	},
	KeyIncomeNone: {
		model.LangEnglish: "No income recorded yet. Please add some income entries.",
		model.LangHindi:   "अभी तक कोई आय दर्ज नहीं की गई है। कृपया कुछ income entries जोड़ें।",
	},
	KeyExpenseTotal: {
		model.LangEnglish: "💸 Your total expenses: {total}\n📊 Total transactions: {count}\n\nThis is the sum of all your expense entries.",
		model.LangHindi:   "💸 आपका कुल खर्च: {total}\n📊 कुल लेन-देन: {count}\n\nयह आपके सभी expense entries का योग है।",
	},
	KeyExpenseNone: {
		model.LangEnglish: "No expenses recorded yet. Please add some expense entries.",
		model.LangHindi:   "अभी तक कोई खर्च दर्ज नहीं किया गया है। कृपया कुछ expense entries जोड़ें।",
	},
	KeyTodayIncomeTotal: {
		model.LangEnglish: "Today's total income is {total}. You have {count} transactions.",
		model.LangHindi:   "आज की कुल आय {total} है। {count} लेन-देन हुए हैं।",
	},
	KeyTodayIncomeNone: {
		model.LangEnglish: "No income recorded for today.",
		model.LangHindi:   "आज कोई आय दर्ज नहीं हुई है।",
	},
	KeyTodayExpenseTotal: {
		model.LangEnglish: "Today's total expense is {total}. You have {count} transactions.",
		model.LangHindi:   "आज का कुल खर्च {total} है। {count} लेन-देन हुए हैं।",
	},
	KeyTodayExpenseNone: {
		model.LangEnglish: "No expenses recorded for today.",
		model.LangHindi:   "आज कोई खर्च नहीं हुआ है।",
	},
	KeyAggregateUnavailable: {
		model.LangEnglish: "I'm having trouble getting your profit and loss information. Please add some income and expense data first.",
		model.LangHindi:   "मुझे आपके profit और loss की जानकारी पाने में समस्या हो रही है। कृपया कुछ income और expense डेटा जोड़ें।",
	},
	KeyNoValidTransactions: {
		model.LangEnglish: "No valid transactions found.",
		model.LangHindi:   "कोई मान्य लेन-देन नहीं मिला।",
	},
	KeyItemsConfirmed: {
		model.LangEnglish: "✅ Successfully processed {count} items!",
		model.LangHindi:   "✅ {count} आइटम सफलतापूर्वक प्रोसेस किए गए!",
	},
	KeyGenericHelp: {
		model.LangEnglish: "I'm here to help with your business needs!",
		model.LangHindi:   "मैं आपके व्यापार में मदद के लिए यहाँ हूँ!",
	},
	KeyApology: {
		model.LangEnglish: "Sorry, something went wrong. Please try again.",
		model.LangHindi:   "माफ़ करें, कुछ गलत हो गया। कृपया दोबारा कोशिश करें।",
	},
}

// Render interpolates the template for key in the requested language.
// Unsupported languages fall back to the English template; an unknown key
// renders a generic default. Render never fails.
func Render(key Key, lang model.Language, values Values) string {
	byLang, ok := templates[key]
	if !ok {
		return genericDefault
	}

	tmpl, ok := byLang[lang]
	if !ok {
		tmpl = byLang[model.LangEnglish]
	}
	if tmpl == "" {
		return genericDefault
	}

	if len(values) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
