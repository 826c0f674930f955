package services

import (
	"sort"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
	"github.com/sia-ops/shiftsheet/internal/logger"
)

// shiftKey identifies one worker's bucket on one shift day.
type shiftKey struct {
	day    string
	worker string
}

// shiftTally counts a bucket's day and night rows.
type shiftTally struct {
	day   int
	night int
}

// dominant returns the bucket's winning label. Ties go to Day; the
// tie-break is arbitrary but must be deterministic so repeated runs agree.
func (t shiftTally) dominant() domain.ShiftLabel {
	if t.day >= t.night {
		return domain.ShiftDay
	}
	return domain.ShiftNight
}

// reconcileRows recomputes the shift label over the full persisted row set.
//
// A new row can retroactively change the dominant shift of older rows for
// the same worker and shift day, so the whole set is re-labelled from
// scratch on every pass: tally every classifiable row into its
// (shift day, worker) bucket, derive the winning label per bucket, then
// overwrite only the Shift column. Rows whose Processed On cell is missing
// or unparseable pass through verbatim. The pass is idempotent: with no
// new data the tallies, and therefore the labels, are stable.
func reconcileRows(rows [][]string, window domain.ShiftWindow) [][]string {
	tallies := make(map[shiftKey]shiftTally)

	for _, row := range rows {
		instant, ok := domain.ParseSheetTime(cellAt(row, domain.ColProcessedOn))
		if !ok {
			continue
		}
		shift := window.Classify(instant)
		key := shiftKey{day: shift.Day, worker: workerOf(row)}

		tally := tallies[key]
		if shift.Label == domain.ShiftDay {
			tally.day++
		} else {
			tally.night++
		}
		tallies[key] = tally
	}

	logTallies(tallies)

	out := make([][]string, len(rows))
	for i, row := range rows {
		copied := make([]string, len(row))
		copy(copied, row)
		out[i] = copied

		instant, ok := domain.ParseSheetTime(cellAt(row, domain.ColProcessedOn))
		if !ok {
			continue
		}
		shift := window.Classify(instant)
		tally, ok := tallies[shiftKey{day: shift.Day, worker: workerOf(row)}]
		if !ok {
			continue
		}

		// Rows read back from the sheet drop trailing empty cells, so a
		// row may be too short to address the Shift column directly.
		if len(out[i]) <= domain.ColShift {
			padded := make([]string, domain.ColShift+1)
			copy(padded, out[i])
			out[i] = padded
		}
		out[i][domain.ColShift] = string(tally.dominant())
	}

	return out
}

// workerOf returns the row's worker identity: the stored Processed By
// display value, with blanks pooled into the Unknown bucket.
func workerOf(row []string) string {
	if worker := cellAt(row, domain.ColProcessedBy); worker != "" {
		return worker
	}
	return domain.UnknownWorker
}

// cellAt reads a cell from a possibly ragged row.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// logTallies dumps the buckets in sorted order so verbose output is
// reproducible across runs.
func logTallies(tallies map[shiftKey]shiftTally) {
	if !logger.IsVerbose() {
		return
	}

	keys := make([]shiftKey, 0, len(tallies))
	for key := range tallies {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].worker < keys[j].worker
	})

	for _, key := range keys {
		tally := tallies[key]
		logger.Debug("shift tally %s %s: day=%d night=%d -> %s",
			key.day, key.worker, tally.day, tally.night, tally.dominant())
	}
}
