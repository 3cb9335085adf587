package generation

import (
	"testing"

	"transfit/workout-app/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileDefaults(t *testing.T) {
	t.Run("unknown goal defaults to general fitness", func(t *testing.T) {
		profile := baseProfile()
		profile.PrimaryGoal = "sculpting"
		p := normalize(profile)
		assert.Equal(t, domain.GoalGeneralFitness, p.PrimaryGoal)
	})

	t.Run("unknown experience defaults to beginner", func(t *testing.T) {
		profile := baseProfile()
		profile.Experience = "elite"
		p := normalize(profile)
		assert.Equal(t, domain.ExperienceBeginner, p.Experience)
	})

	t.Run("out-of-range frequency defaults to three", func(t *testing.T) {
		for _, freq := range []int{0, -1, 8} {
			profile := baseProfile()
			profile.WorkoutFrequency = freq
			p := normalize(profile)
			assert.Equal(t, 3, p.WorkoutFrequency, "frequency=%d", freq)
		}
	})

	t.Run("empty equipment defaults to bodyweight", func(t *testing.T) {
		profile := baseProfile()
		profile.Equipment = nil
		p := normalize(profile)
		assert.True(t, p.Equipment["bodyweight"])
		assert.Len(t, p.Equipment, 1)
	})

	t.Run("equipment names normalize to catalog tokens", func(t *testing.T) {
		profile := baseProfile()
		profile.Equipment = []string{"Adjustable Dumbbells", "resistance band", "none"}
		p := normalize(profile)
		assert.True(t, p.Equipment["db"])
		assert.True(t, p.Equipment["band"])
		assert.True(t, p.Equipment["bodyweight"])
	})

	t.Run("negative months on therapy treated as zero", func(t *testing.T) {
		profile := baseProfile()
		profile.HRT = domain.HormoneTherapy{OnHRT: true, Type: domain.HormoneEstrogen, MonthsOnHRT: -4}
		p := normalize(profile)
		assert.Zero(t, p.HRT.MonthsOnHRT)
	})

	t.Run("negative weeks post-op treated as healed", func(t *testing.T) {
		profile := baseProfile()
		profile.Surgeries = []domain.Surgery{{Type: domain.SurgeryTop, WeeksPostOp: -1}}
		p := normalize(profile)
		assert.True(t, p.Surgeries[0].FullyHealed)
		assert.Equal(t, domain.PhaseMaintenance, p.RecoveryPhase)
	})

	t.Run("focus and trigger lists are lowercased and trimmed", func(t *testing.T) {
		profile := baseProfile()
		profile.BodyFocusPrefer = []string{" Glutes ", "LEGS", ""}
		profile.DysphoriaTriggers = []string{"Crowded_Spaces"}
		p := normalize(profile)
		assert.Equal(t, []string{"glutes", "legs"}, p.BodyFocusPrefer)
		assert.True(t, p.hasTrigger("crowded_spaces"))
	})
}

func TestHeavyBinder(t *testing.T) {
	tests := []struct {
		name    string
		binding domain.ChestBinding
		want    bool
	}{
		{"no binding", domain.ChestBinding{}, false},
		{"occasional", domain.ChestBinding{BindsChest: true, Frequency: domain.BindingOccasionally}, false},
		{"daily", domain.ChestBinding{BindsChest: true, Frequency: domain.BindingDaily}, true},
		{"long hours", domain.ChestBinding{BindsChest: true, Frequency: domain.BindingMostDays, DailyHours: 8}, true},
		{"hours without binding flag", domain.ChestBinding{DailyHours: 12}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := baseProfile()
			profile.Binding = tc.binding
			p := normalize(profile)
			assert.Equal(t, tc.want, p.heavyBinder())
		})
	}
}
