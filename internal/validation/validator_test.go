// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"math"
	"strings"
	"testing"
)

type preferenceStruct struct {
	Tone       float64  `json:"tone" validate:"finite,gte=1,lte=10"`
	Intensity  float64  `json:"intensity" validate:"finite,gte=1,lte=10"`
	Complexity float64  `json:"complexity" validate:"finite,gte=1,lte=10"`
	K          int      `json:"k" validate:"gte=0,lte=100"`
	Title      string   `json:"title,omitempty" validate:"omitempty,max=5"`
	Genres     []string `json:"genres" validate:"max=2"`
	Internal   string   `json:"-" validate:"omitempty"`
}

func validPreference() preferenceStruct {
	return preferenceStruct{Tone: 5, Intensity: 5, Complexity: 5, K: 5}
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*preferenceStruct)
		wantField string
		wantTag   string
	}{
		{name: "valid", modify: func(p *preferenceStruct) {}},
		{name: "lower bounds", modify: func(p *preferenceStruct) { p.Tone, p.Intensity, p.Complexity, p.K = 1, 1, 1, 0 }},
		{name: "upper bounds", modify: func(p *preferenceStruct) { p.Tone, p.Intensity, p.Complexity, p.K = 10, 10, 10, 100 }},
		{name: "tone too low", modify: func(p *preferenceStruct) { p.Tone = 0.5 }, wantField: "tone", wantTag: "gte"},
		{name: "intensity too high", modify: func(p *preferenceStruct) { p.Intensity = 10.5 }, wantField: "intensity", wantTag: "lte"},
		{name: "complexity NaN", modify: func(p *preferenceStruct) { p.Complexity = math.NaN() }, wantField: "complexity", wantTag: "finite"},
		{name: "tone infinite", modify: func(p *preferenceStruct) { p.Tone = math.Inf(1) }, wantField: "tone", wantTag: "finite"},
		{name: "negative k", modify: func(p *preferenceStruct) { p.K = -1 }, wantField: "k", wantTag: "gte"},
		{name: "long title", modify: func(p *preferenceStruct) { p.Title = "abcdefg" }, wantField: "title", wantTag: "max"},
		{name: "too many genres", modify: func(p *preferenceStruct) { p.Genres = []string{"a", "b", "c"} }, wantField: "genres", wantTag: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPreference()
			tt.modify(&p)

			err := ValidateStruct(&p)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*preferenceStruct)
		want   string
	}{
		{"lte", func(p *preferenceStruct) { p.Tone = 11 }, "tone must be less than or equal to 10"},
		{"gte", func(p *preferenceStruct) { p.K = -2 }, "k must be greater than or equal to 0"},
		{"finite", func(p *preferenceStruct) { p.Intensity = math.NaN() }, "intensity must be a finite number"},
		{"string max", func(p *preferenceStruct) { p.Title = "too long" }, "title must be at most 5 characters"},
		{"slice max", func(p *preferenceStruct) { p.Genres = []string{"a", "b", "c"} }, "genres must be at most 2 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPreference()
			tt.modify(&p)

			err := ValidateStruct(&p)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		p := validPreference()
		p.Complexity = math.Inf(-1)

		apiErr := ValidateStruct(&p).ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
		}
		if apiErr.Details["field"] != "complexity" {
			t.Errorf("Details[field] = %v, want complexity", apiErr.Details["field"])
		}
		if apiErr.Details["value"] != "-Inf" {
			t.Errorf("Details[value] = %v, want -Inf", apiErr.Details["value"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		p := validPreference()
		p.Tone = 0
		p.Intensity = 20

		apiErr := ValidateStruct(&p).ToAPIError()
		if !strings.Contains(apiErr.Message, "tone") || !strings.Contains(apiErr.Message, "intensity") {
			t.Errorf("Message = %q, want both fields", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "Validation failed")
		}
	})
}
