package credman

import (
	"strings"
	"testing"
	"time"

	"github.com/warpdl/cookiesave/internal/cookies"
)

func TestBuildRecord(t *testing.T) {
	at := time.Date(2024, 5, 1, 11, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	rec, err := BuildRecord(cookies.Credentials{
		cookies.PrimaryID:   "A",
		cookies.SecondaryID: "B",
		cookies.TimestampID: "C",
	}, at)
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}
	if rec.PrimaryID != "A" || rec.SecondaryID != "B" || rec.TimestampID != "C" {
		t.Errorf("unexpected record %+v", rec)
	}
	if got := rec.CapturedAtString(); got != "2024-05-01T09:30:00.000Z" {
		t.Errorf("timestamp = %q, want UTC with milliseconds", got)
	}
}

func TestBuildRecord_SecondaryDefaultsEmpty(t *testing.T) {
	rec, err := BuildRecord(cookies.Credentials{
		cookies.PrimaryID:   "A",
		cookies.TimestampID: "C",
	}, time.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}
	if rec.SecondaryID != "" {
		t.Errorf("secondary = %q, want empty", rec.SecondaryID)
	}
}

func TestBuildRecord_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		creds   cookies.Credentials
		missing []string
	}{
		{"nothing", cookies.Credentials{}, []string{cookies.PrimaryID, cookies.TimestampID}},
		{"no timestamp", cookies.Credentials{cookies.PrimaryID: "A", cookies.SecondaryID: "B"}, []string{cookies.TimestampID}},
		{"no primary", cookies.Credentials{cookies.TimestampID: "C"}, []string{cookies.PrimaryID}},
		{"empty primary", cookies.Credentials{cookies.PrimaryID: "", cookies.TimestampID: "C"}, []string{cookies.PrimaryID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRecord(tt.creds, time.Now())
			if !IsMissingRequiredField(err) {
				t.Fatalf("expected MissingRequiredFieldError, got %v", err)
			}
			mr := err.(*MissingRequiredFieldError)
			if strings.Join(mr.Missing, ",") != strings.Join(tt.missing, ",") {
				t.Errorf("missing = %v, want %v", mr.Missing, tt.missing)
			}
			for _, id := range cookies.RequiredIDs {
				if !strings.Contains(err.Error(), id) {
					t.Errorf("message should name %s: %q", id, err.Error())
				}
			}
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 30, ""},
		{"short", 30, "short"},
		{strings.Repeat("a", 30), 30, strings.Repeat("a", 30)},
		{strings.Repeat("a", 31), 30, strings.Repeat("a", 30) + "..."},
		{"héllo wörld", 5, "héllo..."},
	}
	for _, tt := range tests {
		if got := Preview(tt.in, tt.n); got != tt.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRecordEnv(t *testing.T) {
	rec, _ := BuildRecord(cookies.Credentials{
		cookies.PrimaryID:   "A",
		cookies.TimestampID: "C",
	}, time.Now())
	got := strings.Join(rec.Env(), "\n")
	want := "SECURE_1PSID=A\nSECURE_1PSIDCC=\nSECURE_1PSIDTS=C"
	if got != want {
		t.Errorf("Env() = %q, want %q", got, want)
	}
}
