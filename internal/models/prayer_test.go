package models

import "testing"

func TestPrayerLogCompletedCount(t *testing.T) {
	tests := []struct {
		name string
		log  PrayerLog
		want int
	}{
		{"none", PrayerLog{}, 0},
		{"fajr only", PrayerLog{Fajr: true}, 1},
		{"three of five", PrayerLog{Fajr: true, Dhuhr: true, Isha: true}, 3},
		{"all five", PrayerLog{Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.CompletedCount(); got != tt.want {
				t.Errorf("CompletedCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrayerLogComplete(t *testing.T) {
	full := PrayerLog{Fajr: true, Dhuhr: true, Asr: true, Maghrib: true, Isha: true}
	if !full.Complete() {
		t.Error("expected full day to be complete")
	}

	partial := PrayerLog{Fajr: true, Dhuhr: true, Asr: true, Maghrib: true}
	if partial.Complete() {
		t.Error("expected four of five to be incomplete")
	}
}
