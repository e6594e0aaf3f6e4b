package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/dynarray/internal/script"
)

// Separator joins the items of a record inside a single CSV field.
const Separator = "|"

func JSON(w io.Writer, tr *script.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tr)
}

// CSV writes one row per record with a header of step, op, result, count,
// capacity and items.
func CSV(w io.Writer, tr *script.Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "op", "result", "count", "capacity", "items"}); err != nil {
		return err
	}

	for _, r := range tr.Records {
		row := []string{
			strconv.Itoa(r.Step),
			r.Op,
			r.Result,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.Capacity),
			strings.Join(r.Items, Separator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
