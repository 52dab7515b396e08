package task

import (
	"strings"
	"testing"
)

func TestValidatePayloadOK(t *testing.T) {
	payload := `[
		{"id": "1", "title": "A", "status": false},
		{"id": "2", "title": "B", "description": "d", "dueDate": "2024-06-01T00:00:00Z", "status": true}
	]`
	if errs := ValidatePayload([]byte(payload)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidatePayloadEmptyCollection(t *testing.T) {
	if errs := ValidatePayload([]byte(`[]`)); len(errs) != 0 {
		t.Errorf("expected no errors for empty array, got %v", errs)
	}
}

func TestValidatePayloadErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not an array", `{"id": "1"}`},
		{"missing id", `[{"title": "A", "status": false}]`},
		{"status not boolean", `[{"id": "1", "title": "A", "status": "false"}]`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePayload([]byte(tt.payload))
			if len(errs) == 0 {
				t.Errorf("expected errors for %s", tt.name)
			}
		})
	}
}

func TestValidatePayloadErrorPath(t *testing.T) {
	payload := `[{"id": "1", "title": "A", "status": false}, {"title": "B", "status": true}]`
	errs := ValidatePayload([]byte(payload))
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}

	found := false
	for _, err := range errs {
		if strings.Contains(err.Error(), "[1]") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error located at [1], got %v", errs)
	}
}
