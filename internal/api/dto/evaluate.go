package dto

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"
)

type EvaluateRequest struct {
	Expression string `json:"expression" example:"2 + 4 * 8"`
}

// Number encodes finite values as JSON numbers and non-finite values as
// the strings "+Inf", "-Inf" and "NaN".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

type EvaluateResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     Number    `json:"result" swaggertype:"number"`
}

type BatchRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchItem holds either Result or the error fields.
type BatchItem struct {
	Expression string  `json:"expression"`
	Result     *Number `json:"result,omitempty" swaggertype:"number"`
	Error      string  `json:"error,omitempty"`
	Kind       string  `json:"kind,omitempty"`
	Position   *int    `json:"position,omitempty"`
}

type BatchResponse struct {
	ID        uuid.UUID   `json:"id"`
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}
