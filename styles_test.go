package csv2docx

import (
	"errors"
	"testing"
)

func TestStyles_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Styles)
		wantErr bool
	}{
		{"defaults", func(*Styles) {}, false},
		{"hash color", func(s *Styles) { s.TextColor = "#1F4E79" }, false},
		{"empty colors inherit", func(s *Styles) { s.TextColor, s.HeadingColor = "", "" }, false},
		{"zero spacing", func(s *Styles) { s.SkillSpacing = 0 }, false},
		{"zero body size", func(s *Styles) { s.BodySize = 0 }, true},
		{"title too large", func(s *Styles) { s.TitleSize = MaxFontSize + 1 }, true},
		{"negative spacing", func(s *Styles) { s.EntrySpacing = -1 }, true},
		{"spacing too large", func(s *Styles) { s.ParagraphSpacing = MaxSpacing + 1 }, true},
		{"short color", func(s *Styles) { s.HeadingColor = "FFF" }, true},
		{"named color", func(s *Styles) { s.TextColor = "navy" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := DefaultStyles()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyles) {
					t.Errorf("Validate() error = %v, want ErrInvalidStyles", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
