// Package model defines shared data structures.
package model

import "time"

// Answer is one of the two possible responses to a shown word.
type Answer int

const (
	// AnswerUnknown marks the word as not recognized (swipe left).
	AnswerUnknown Answer = iota
	// AnswerKnown marks the word as recognized (swipe right).
	AnswerKnown
)

// SessionKind distinguishes how a drill queue is built.
type SessionKind int

const (
	// KindNormal drills a random subset of a word list.
	KindNormal SessionKind = iota
	// KindReviewWord drills one word repeated.
	KindReviewWord
	// KindReviewSet drills a fixed set of weak words, reshuffled per start.
	KindReviewSet
)

// DrillConfig defines drill settings.
type DrillConfig struct {
	List            string
	Words           int
	TopN            int
	Speech          bool
	SpeechLang      string
	AutoSpeak       bool
	ShowTranslation bool
}

// WordStat accumulates answers for a single word.
type WordStat struct {
	Known   int        `json:"known"`
	Unknown int        `json:"unknown"`
	Last    *time.Time `json:"last"`
}

// HistoryRecord is the persisted learning history.
type HistoryRecord struct {
	Sessions      int                 `json:"sessions"`
	LastStudiedAt *time.Time          `json:"lastStudiedAt"`
	WordStats     map[string]WordStat `json:"wordStats"`
}

// EmptyHistory returns a fresh history record with no answers logged.
func EmptyHistory() HistoryRecord {
	return HistoryRecord{WordStats: map[string]WordStat{}}
}

// RankEntry is one row of the weak-word ranking.
type RankEntry struct {
	Word        string
	Translation string
	Known       int
	Unknown     int
	Total       int
	UnknownRate float64
	Last        *time.Time
}
