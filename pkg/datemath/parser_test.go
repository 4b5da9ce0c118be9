package datemath_test

import (
	"testing"
	"time"

	"legal-office-management/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Hoje",
			relative: "hoje",
			want:     startOfBase,
		},
		{
			name:     "Empty means today",
			relative: "",
			want:     startOfBase,
		},
		{
			name:     "Amanha",
			relative: "Amanhã",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Amanha without accent",
			relative: "amanha",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Ontem",
			relative: "ontem",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "Em 3 dias",
			relative: "em 3 dias",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "Em 2 semanas",
			relative: "em 2 semanas",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "Em 1 mes",
			relative: "em 1 mês",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Em 2 meses",
			relative: "em 2 meses",
			want:     startOfBase.AddDate(0, 2, 0),
		},
		{
			name:     "Absolute BR date",
			relative: "15/03/2024",
			want:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Absolute ISO date",
			relative: "2024-03-15",
			want:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Invalid duration pattern",
			relative: "em alguns dias",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Proxima segunda (from Wed)",
			relative: "próxima segunda",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Proxima quarta-feira (from Wed)",
			relative: "proxima quarta-feira",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Proximo sabado",
			relative: "próximo sábado",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "Unknown expression",
			relative: "algum dia",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Invalid next weekday",
			relative: "proxima feriado",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Impossible date",
			relative: "31/02/2024",
			want:     baseTime,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBR(t *testing.T) {
	parser, _ := datemath.NewParser("America/Sao_Paulo")
	loc := parser.Location()
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{in: "15/03/2024", want: want, wantOK: true},
		{in: "15/3/2024", want: want, wantOK: true},
		{in: "15/03/24", want: want, wantOK: true},
		{in: "15-03-2024", want: want, wantOK: true},
		{in: "15.03.2024", want: want, wantOK: true},
		{in: "15.3.2024", want: want, wantOK: true},
		{in: "15.03.24", want: want, wantOK: true},
		{in: "15-03-24", want: want, wantOK: true},
		{in: "2024-03-15", want: want, wantOK: true},
		{in: " 15/03/2024 ", want: want, wantOK: true},
		{in: "31/02/2024"},
		{in: "32/01/2024"},
		{in: "15/13/2024"},
		{in: "amanhã"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parser.ParseBR(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseBR(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseBR(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("America/Sao_Paulo")
	// 02:00 UTC on the 16th is still the 15th in São Paulo (UTC-3).
	in := time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, parser.Location())

	if got := parser.StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
