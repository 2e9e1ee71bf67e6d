package store

import (
	"encoding/json"
	"time"

	"github.com/kmori/sightswipe/internal/model"
)

// decodeHistory parses a stored history document. Parsing is lenient:
// non-JSON input yields the empty record, and individual fields that are
// missing or of the wrong shape fall back to their defaults.
func decodeHistory(raw string) model.HistoryRecord {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil || doc == nil {
		return model.EmptyHistory()
	}

	record := model.EmptyHistory()
	if field, ok := doc["sessions"]; ok {
		var sessions float64
		if err := json.Unmarshal(field, &sessions); err == nil {
			record.Sessions = int(sessions)
		}
	}
	if field, ok := doc["lastStudiedAt"]; ok {
		record.LastStudiedAt = decodeTimestamp(field)
	}
	if field, ok := doc["wordStats"]; ok {
		var stats map[string]json.RawMessage
		if err := json.Unmarshal(field, &stats); err == nil {
			for word, rawStat := range stats {
				record.WordStats[word] = decodeWordStat(rawStat)
			}
		}
	}
	return record
}

func decodeWordStat(raw json.RawMessage) model.WordStat {
	var doc struct {
		Known   float64         `json:"known"`
		Unknown float64         `json:"unknown"`
		Last    json.RawMessage `json:"last"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.WordStat{}
	}
	return model.WordStat{
		Known:   int(doc.Known),
		Unknown: int(doc.Unknown),
		Last:    decodeTimestamp(doc.Last),
	}
}

// decodeTimestamp reads an ISO-8601 string. Null, absent, or unparseable
// values all map to an absent timestamp.
func decodeTimestamp(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil || text == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil
	}
	return &parsed
}
