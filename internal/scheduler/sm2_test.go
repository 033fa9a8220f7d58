package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNext(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		quality      int
		repetitions  int
		easeFactor   float64
		intervalDays int
		want         Result
	}{
		{
			name:         "first review with perfect recall",
			quality:      5,
			repetitions:  0,
			easeFactor:   2.5,
			intervalDays: 0,
			want: Result{
				EaseFactor:     2.6,
				IntervalDays:   1,
				Repetitions:    1,
				NextReviewDate: now.AddDate(0, 0, 1),
				Maturity:       MaturityLearning,
			},
		},
		{
			name:         "second review with good recall",
			quality:      4,
			repetitions:  1,
			easeFactor:   2.6,
			intervalDays: 1,
			want: Result{
				EaseFactor:     2.6,
				IntervalDays:   7, // 6 * 1.2 truncated
				Repetitions:    2,
				NextReviewDate: now.AddDate(0, 0, 7),
				Maturity:       MaturityYoung,
			},
		},
		{
			name:         "failure after maturity resets to new",
			quality:      2,
			repetitions:  3,
			easeFactor:   2.5,
			intervalDays: 15,
			want: Result{
				EaseFactor:     2.5, // unchanged on wrong answers
				IntervalDays:   1,
				Repetitions:    0,
				NextReviewDate: now.AddDate(0, 0, 1),
				Maturity:       MaturityNew,
			},
		},
		{
			name:         "third review grows interval by ease factor",
			quality:      3,
			repetitions:  2,
			easeFactor:   2.5,
			intervalDays: 6,
			want: Result{
				EaseFactor:     2.36, // 2.5 - 0.14
				IntervalDays:   15,   // ceil(6 * 2.36)
				Repetitions:    3,
				NextReviewDate: now.AddDate(0, 0, 15),
				Maturity:       MaturityYoung,
			},
		},
		{
			name:         "easy answer scales interval by 1.5",
			quality:      5,
			repetitions:  2,
			easeFactor:   2.5,
			intervalDays: 6,
			want: Result{
				EaseFactor:     2.6,
				IntervalDays:   24, // ceil(6 * 2.6) = 16, then 16 * 1.5 truncated
				Repetitions:    3,
				NextReviewDate: now.AddDate(0, 0, 24),
				Maturity:       MaturityMature,
			},
		},
		{
			name:         "complete blackout forces one day interval",
			quality:      0,
			repetitions:  5,
			easeFactor:   2.1,
			intervalDays: 40,
			want: Result{
				EaseFactor:     2.1,
				IntervalDays:   1,
				Repetitions:    0,
				NextReviewDate: now.AddDate(0, 0, 1),
				Maturity:       MaturityNew,
			},
		},
		{
			name:         "hard wrong answer keeps minimum interval of one day",
			quality:      1,
			repetitions:  0,
			easeFactor:   2.5,
			intervalDays: 0,
			want: Result{
				EaseFactor:     2.5,
				IntervalDays:   1, // max(1, 1 * 0.5)
				Repetitions:    0,
				NextReviewDate: now.AddDate(0, 0, 1),
				Maturity:       MaturityNew,
			},
		},
		{
			name:         "ease factor floors at minimum on hard correct answer",
			quality:      3,
			repetitions:  4,
			easeFactor:   1.3,
			intervalDays: 10,
			want: Result{
				EaseFactor:     1.3, // 1.3 - 0.14 clamped back up
				IntervalDays:   13,  // ceil(10 * 1.3)
				Repetitions:    5,
				NextReviewDate: now.AddDate(0, 0, 13),
				Maturity:       MaturityYoung,
			},
		},
		{
			name:         "wrong answer raises ease factor below floor back to minimum",
			quality:      2,
			repetitions:  1,
			easeFactor:   1.1,
			intervalDays: 3,
			want: Result{
				EaseFactor:     1.3,
				IntervalDays:   1,
				Repetitions:    0,
				NextReviewDate: now.AddDate(0, 0, 1),
				Maturity:       MaturityNew,
			},
		},
		{
			name:         "long interval classifies as mature",
			quality:      4,
			repetitions:  3,
			easeFactor:   2.5,
			intervalDays: 15,
			want: Result{
				EaseFactor:     2.5,
				IntervalDays:   45, // ceil(15 * 2.5) = 38, then 38 * 1.2 truncated
				Repetitions:    4,
				NextReviewDate: now.AddDate(0, 0, 45),
				Maturity:       MaturityMature,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNext(now, tt.quality, tt.repetitions, tt.easeFactor, tt.intervalDays)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.EaseFactor, got.EaseFactor, 0.001)
			assert.Equal(t, tt.want.IntervalDays, got.IntervalDays)
			assert.Equal(t, tt.want.Repetitions, got.Repetitions)
			assert.Equal(t, tt.want.NextReviewDate, got.NextReviewDate)
			assert.Equal(t, tt.want.Maturity, got.Maturity)
		})
	}
}

func TestComputeNext_InvalidQuality(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for _, quality := range []int{-1, 6, 100} {
		_, err := ComputeNext(now, quality, 0, 2.5, 0)
		assert.ErrorIs(t, err, ErrInvalidQuality, "quality %d", quality)
	}
}

func TestComputeNext_EaseFactorNeverBelowMinimum(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for quality := 0; quality <= 5; quality++ {
		for _, ease := range []float64{1.3, 1.5, 2.5, 1.2} {
			got, err := ComputeNext(now, quality, 3, ease, 10)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.EaseFactor, MinEaseFactor,
				"quality %d ease %v", quality, ease)
		}
	}
}

func TestComputeNext_WrongAnswerResetsRepetitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for quality := 0; quality < 3; quality++ {
		got, err := ComputeNext(now, quality, 7, 2.8, 60)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Repetitions)
		assert.Equal(t, MaturityNew, got.Maturity)
		assert.Equal(t, 2.8, got.EaseFactor, "ease factor never decreases on wrong answers")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		repetitions  int
		intervalDays int
		want         Maturity
	}{
		{name: "zero repetitions is new", repetitions: 0, intervalDays: 30, want: MaturityNew},
		{name: "short interval is learning", repetitions: 1, intervalDays: 1, want: MaturityLearning},
		{name: "six days is still learning", repetitions: 2, intervalDays: 6, want: MaturityLearning},
		{name: "seven days is young", repetitions: 2, intervalDays: 7, want: MaturityYoung},
		{name: "twenty days is young", repetitions: 3, intervalDays: 20, want: MaturityYoung},
		{name: "twenty one days is mature", repetitions: 3, intervalDays: 21, want: MaturityMature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.repetitions, tt.intervalDays))
		})
	}
}
