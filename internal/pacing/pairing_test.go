package pacing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_PracticeWithCheck(t *testing.T) {
	pairs := Pair([]domain.Activity{
		check("c1", domain.SectionA, "3.1"),
		practice("p1", domain.SectionA, "3.1"),
	})
	require.Len(t, pairs, 1)
	assert.Equal(t, "p1", pairs[0].Primary.ID)
	require.NotNil(t, pairs[0].MasteryCheck)
	assert.Equal(t, "c1", pairs[0].MasteryCheck.ID)
	assert.Equal(t, "c1", pairs[0].Qualifying().ID)
}

func TestPair_PracticeWithoutCheckQualifiesItself(t *testing.T) {
	pairs := Pair([]domain.Activity{practice("ru1", domain.SectionRampUps, "3.RU1")})
	require.Len(t, pairs, 1)
	assert.Nil(t, pairs[0].MasteryCheck)
	assert.Equal(t, "ru1", pairs[0].Qualifying().ID)
}

func TestPair_PassOrder(t *testing.T) {
	pairs := Pair([]domain.Activity{
		assessment("test", domain.SectionUnitAssessment, "3.18"),
		check("c9", domain.SectionB, "3.9"),
		practice("p1", domain.SectionA, "3.1"),
		check("c1", domain.SectionA, "3.1"),
		practice("p2", domain.SectionA, "3.2"),
	})
	require.Len(t, pairs, 4)
	assert.Equal(t, "p1", pairs[0].Primary.ID)
	assert.Equal(t, "p2", pairs[1].Primary.ID)
	assert.Nil(t, pairs[1].MasteryCheck)
	assert.Equal(t, "c9", pairs[2].Primary.ID, "orphan checks follow practice pairs")
	assert.Equal(t, "test", pairs[3].Primary.ID, "assessments come last")
}

func TestPair_SecondCheckForSameLessonStandsAlone(t *testing.T) {
	pairs := Pair([]domain.Activity{
		practice("p1", domain.SectionA, "3.1"),
		check("c1", domain.SectionA, "3.1"),
		check("c1b", domain.SectionA, "3.1"),
	})
	require.Len(t, pairs, 2)
	assert.Equal(t, "c1", pairs[0].MasteryCheck.ID)
	assert.Equal(t, "c1b", pairs[1].Primary.ID)
}

func TestPair_Empty(t *testing.T) {
	assert.Empty(t, Pair(nil))
}

// TestPair_Invariant_EveryActivityOnce property-tests that pairing neither
// drops nor duplicates activities, whatever the input order.
func TestPair_Invariant_EveryActivityOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []domain.ActivityKind{domain.ActivityPractice, domain.ActivityMasteryCheck, domain.ActivityAssessment}

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(12)
		acts := make([]domain.Activity, n)
		for i := range acts {
			acts[i] = domain.Activity{
				ID:           fmt.Sprintf("act-%d", i),
				Section:      domain.SectionA,
				UnitLessonID: fmt.Sprintf("3.%d", rng.Intn(4)),
				Kind:         kinds[rng.Intn(len(kinds))],
			}
		}

		want := pairingSignature(Pair(acts))
		seen := make(map[string]int)
		for _, p := range Pair(acts) {
			seen[p.Primary.ID]++
			if p.MasteryCheck != nil {
				seen[p.MasteryCheck.ID]++
				assert.Equal(t, domain.ActivityPractice, p.Primary.Kind)
				assert.Equal(t, p.Primary.UnitLessonID, p.MasteryCheck.UnitLessonID)
			}
		}
		assert.Len(t, seen, n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "activity %s emitted %d times", id, count)
		}

		shuffled := make([]domain.Activity, n)
		copy(shuffled, acts)
		rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, pairingSignature(Pair(shuffled)))
	}
}

// pairingSignature is the set of (lesson, paired?) tuples, which must not
// depend on input order.
func pairingSignature(pairs []Pairing) map[string]int {
	sig := make(map[string]int)
	for _, p := range pairs {
		key := fmt.Sprintf("%s|%s|%t", p.Primary.UnitLessonID, p.Primary.Kind, p.MasteryCheck != nil)
		sig[key]++
	}
	return sig
}
