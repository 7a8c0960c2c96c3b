package planner

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoJSONObject - 응답 텍스트에 닫힌 JSON 객체가 없음
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ParseError - 모델 응답을 PlanResult로 해석하지 못함
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse plan: %s: %v", e.Reason, e.Err)
	}
	return "parse plan: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePlanFromText - 모델 원문에서 첫 번째 {...} 영역을 찾아 PlanResult로 디코딩
// 앞뒤 설명 문장이나 ```json 코드 펜스는 무시
func ParsePlanFromText(raw string) (PlanResult, error) {
	object, ok := ExtractJSONObject(raw)
	if !ok {
		return PlanResult{}, &ParseError{Reason: "extract", Err: ErrNoJSONObject}
	}

	var wire struct {
		Title     *string               `json:"title"`
		EditPlan  *EditPlan             `json:"editPlan"`
		TextSlots *[]TextSlotDescriptor `json:"textSlots"`
	}
	if err := json.Unmarshal([]byte(object), &wire); err != nil {
		return PlanResult{}, &ParseError{Reason: "decode", Err: err}
	}

	switch {
	case wire.Title == nil:
		return PlanResult{}, &ParseError{Reason: "missing title"}
	case wire.EditPlan == nil || *wire.EditPlan == nil:
		return PlanResult{}, &ParseError{Reason: "missing editPlan"}
	case wire.TextSlots == nil || *wire.TextSlots == nil:
		return PlanResult{}, &ParseError{Reason: "missing textSlots"}
	}

	return PlanResult{
		Title:     *wire.Title,
		EditPlan:  *wire.EditPlan,
		TextSlots: *wire.TextSlots,
	}, nil
}

// ExtractJSONObject - 첫 번째 '{'부터 괄호 짝이 맞는 '}'까지 잘라냄
// 문자열 리터럴 안의 괄호와 이스케이프는 건너뜀, 닫히지 않으면 false
func ExtractJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
