package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var moveRecordHeader = []string{
	"step", "player", "action", "simulations", "exploration", "duration",
	"episodes", "expansions", "nodes", "rollouts", "terminal_hits", "max_depth",
}

// WriteMoveRecords writes one CSV row per searched move, preceded by a header.
func WriteMoveRecords(w io.Writer, records []MoveRecord) error {
	writer := csv.NewWriter(w)

	err := writer.Write(moveRecordHeader)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Action),
			strconv.Itoa(record.Simulations),
			strconv.FormatFloat(record.Exploration, 'f', -1, 64),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.TerminalHits),
			strconv.Itoa(record.MaxDepth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush move records: %w", err)
	}
	return nil
}
