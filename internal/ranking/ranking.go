// Package ranking derives the weak-word ranking from history.
package ranking

import (
	"sort"

	"github.com/kmori/sightswipe/internal/model"
)

// minTotalForRanking is the answer count a word needs before its rate is
// considered meaningful.
const minTotalForRanking = 2

// Translator resolves a word to its localized display text.
type Translator func(word string) string

// Rank returns up to topN words ordered weakest first. Words with at least
// two answers are preferred; when fewer than topN such words exist the full
// answered set is ranked instead, which can yield fewer than topN rows.
func Rank(wordStats map[string]model.WordStat, topN int, translate Translator) []model.RankEntry {
	if topN <= 0 || len(wordStats) == 0 {
		return nil
	}

	rows := make([]model.RankEntry, 0, len(wordStats))
	for word, stat := range wordStats {
		total := stat.Known + stat.Unknown
		if total <= 0 {
			continue
		}
		translation := ""
		if translate != nil {
			translation = translate(word)
		}
		rows = append(rows, model.RankEntry{
			Word:        word,
			Translation: translation,
			Known:       stat.Known,
			Unknown:     stat.Unknown,
			Total:       total,
			UnknownRate: float64(stat.Unknown) / float64(total),
			Last:        stat.Last,
		})
	}

	qualifying := make([]model.RankEntry, 0, len(rows))
	for _, row := range rows {
		if row.Total >= minTotalForRanking {
			qualifying = append(qualifying, row)
		}
	}
	base := rows
	if len(qualifying) >= topN {
		base = qualifying
	}

	sort.Slice(base, func(i, j int) bool {
		if base[i].UnknownRate != base[j].UnknownRate {
			return base[i].UnknownRate > base[j].UnknownRate
		}
		if base[i].Total != base[j].Total {
			return base[i].Total > base[j].Total
		}
		if li, lj := lastUnix(base[i]), lastUnix(base[j]); li != lj {
			return li > lj
		}
		// Word is the final tie-break so the order is a pure function of
		// the input map, not of its iteration order.
		return base[i].Word < base[j].Word
	})

	if topN > len(base) {
		topN = len(base)
	}
	return base[:topN]
}

// Entries with no timestamp sort as the oldest.
func lastUnix(entry model.RankEntry) int64 {
	if entry.Last == nil {
		return 0
	}
	return entry.Last.UnixMilli()
}
