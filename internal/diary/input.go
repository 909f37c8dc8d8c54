package diary

import (
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/kcal/internal/model"
)

// Input is a validated add request built from raw form text.
type Input struct {
	Name     string
	Calories int
	At       time.Time
}

// ParseInput validates raw form values. Calories must be a base-10
// integer >= 0 and the timestamp must be present and parseable.
func ParseInput(name, calories, when string) (Input, error) {
	name = strings.TrimSpace(name)
	calories = strings.TrimSpace(calories)
	when = strings.TrimSpace(when)

	if name == "" {
		return Input{}, &ValidationError{Field: "name", Reason: reasonMissing}
	}
	if calories == "" {
		return Input{}, &ValidationError{Field: "calories", Reason: reasonMissing}
	}
	if when == "" {
		return Input{}, &ValidationError{Field: "time", Reason: reasonMissing}
	}

	n, err := strconv.Atoi(calories)
	if err != nil {
		return Input{}, &ValidationError{Field: "calories", Reason: "not a whole number"}
	}
	if n < 0 {
		return Input{}, &ValidationError{Field: "calories", Reason: "must not be negative"}
	}

	at, err := model.ParseTimestamp(when)
	if err != nil {
		return Input{}, &ValidationError{Field: "time", Reason: err.Error()}
	}

	return Input{Name: name, Calories: n, At: at}, nil
}

func validate(name string, calories int, at time.Time) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", &ValidationError{Field: "name", Reason: reasonMissing}
	case calories < 0:
		return "", &ValidationError{Field: "calories", Reason: "must not be negative"}
	case at.IsZero():
		return "", &ValidationError{Field: "time", Reason: reasonMissing}
	}
	return name, nil
}
