// Package model defines the core domain types used throughout the application.
package model

import "time"

// Language identifies one of the supported response languages.
type Language string

// Supported language codes. Languages without a full template set degrade
// to English at render time.
const (
	LangEnglish   Language = "en"
	LangHindi     Language = "hi"
	LangTamil     Language = "ta"
	LangMalayalam Language = "ml"
	LangTelugu    Language = "te"
	LangKannada   Language = "kn"
	LangGujarati  Language = "gu"
	LangBengali   Language = "bn"
	LangMarathi   Language = "mr"
)

// ParseLanguage normalizes a language tag, defaulting to English.
func ParseLanguage(tag string) Language {
	switch Language(tag) {
	case LangEnglish, LangHindi, LangTamil, LangMalayalam,
		LangTelugu, LangKannada, LangGujarati, LangBengali, LangMarathi:
		return Language(tag)
	default:
		return LangEnglish
	}
}

// Modality records how a message entered the system.
type Modality string

// Modality constants.
const (
	ModalityText         Modality = "text"
	ModalityVoice        Modality = "voice"
	ModalityImage        Modality = "image"
	ModalityConfirmation Modality = "confirmation"
)

// Mode selects the pipeline behavior for a message. Business mode enables
// the deterministic fast paths; general mode goes straight to the classifier.
type Mode string

// Mode constants.
const (
	ModeBusiness Mode = "business"
	ModeGeneral  Mode = "general"
)

// Message is the immutable input to one pipeline run.
type Message struct {
	ReceivedAt time.Time
	Text       string
	Language   Language
	Modality   Modality
	Mode       Mode
}
