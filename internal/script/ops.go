package script

import (
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
)

// NotFound is the result of a find step that matched nothing. Matches are
// recorded quoted, so an empty element reads as "" and never collides.
const NotFound = "<not found>"

type opFunc func(l *dynarray.List[string], s config.StepConfig) (string, error)

var ops = map[string]opFunc{
	"add": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		l.Add(s.Value)
		return "", nil
	},
	"add_range": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		l.AddRange(s.Values...)
		return "", nil
	},
	"insert": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return "", l.Insert(s.Index, s.Value)
	},
	"set": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return "", l.Set(s.Index, s.Value)
	},
	"get": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return l.Get(s.Index)
	},
	"remove": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return strconv.FormatBool(l.Remove(s.Value)), nil
	},
	"remove_at": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return "", l.RemoveAt(s.Index)
	},
	"reverse": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		l.Reverse()
		return "", nil
	},
	"reverse_range": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return "", l.ReverseRange(s.Index, s.Count)
	},
	"index_of": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return strconv.Itoa(l.IndexOf(s.Value)), nil
	},
	"last_index_of": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return strconv.Itoa(l.LastIndexOf(s.Value)), nil
	},
	"contains": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return strconv.FormatBool(l.Contains(s.Value)), nil
	},
	"find": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		item, ok := l.Find(func(v string) bool { return strings.Contains(v, s.Value) })
		if !ok {
			return NotFound, nil
		}
		return strconv.Quote(item), nil
	},
	"find_all": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		found := l.FindAll(func(v string) bool { return strings.Contains(v, s.Value) })
		return found.String(), nil
	},
	"clear": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		l.Clear()
		return "", nil
	},
	"count": func(l *dynarray.List[string], s config.StepConfig) (string, error) {
		return strconv.Itoa(l.Count()), nil
	},
}

// Ops returns the names of every supported operation, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
