package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admittedIDs(docs []Document) []string {
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}

func TestNaive_StopsAtFirstNonFit(t *testing.T) {
	// The third document alone would fit, but naive never reaches it.
	docs := []Document{
		costDoc("a", 100),
		costDoc("b", 4000),
		costDoc("c", 50),
	}
	budget := mustBudget(200, 50)

	admitted := NewNaiveStrategy().Select(docs, nil, budget)

	assert.Equal(t, []string{"a"}, admittedIDs(admitted))
	assert.Equal(t, 100, budget.Used())
}

func TestNaive_PreservesInputOrder(t *testing.T) {
	docs := []Document{costDoc("z", 10), costDoc("a", 10), costDoc("m", 10)}
	budget := mustBudget(1000, 0)

	admitted := NewNaiveStrategy().Select(docs, nil, budget)

	assert.Equal(t, []string{"z", "a", "m"}, admittedIDs(admitted))
}

func TestNaive_EmptyInput(t *testing.T) {
	budget := mustBudget(200, 50)

	admitted := NewNaiveStrategy().Select(nil, nil, budget)

	assert.Empty(t, admitted)
	assert.Equal(t, 0, budget.Used())
}

func TestPrimacy_MostRelevantFirst(t *testing.T) {
	ranked := rankedFixture(costDoc("best", 50), costDoc("good", 50), costDoc("weak", 50))
	budget := mustBudget(1000, 0)

	admitted := NewPrimacyStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"best", "good", "weak"}, admittedIDs(admitted))
}

func TestPrimacy_StopsAtFirstNonFit(t *testing.T) {
	ranked := rankedFixture(costDoc("best", 100), costDoc("huge", 4000), costDoc("small", 10))
	budget := mustBudget(200, 50)

	admitted := NewPrimacyStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"best"}, admittedIDs(admitted))
}

func TestRecency_ReversesAdmittedSequence(t *testing.T) {
	ranked := rankedFixture(costDoc("A", 10), costDoc("B", 10), costDoc("C", 10))
	budget := mustBudget(1000, 0)

	admitted := NewRecencyStrategy().Select(nil, ranked, budget)

	// Most relevant ends up last.
	assert.Equal(t, []string{"C", "B", "A"}, admittedIDs(admitted))
}

func TestRecency_BudgetSpentOnMostRelevant(t *testing.T) {
	// Only two fit; they must be the two best, reversed, not the two worst.
	ranked := rankedFixture(costDoc("best", 50), costDoc("good", 50), costDoc("weak", 50))
	budget := mustBudget(100, 0)

	admitted := NewRecencyStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"good", "best"}, admittedIDs(admitted))
}

func TestSandwich_FewerThanThreeFallsBackToPrimacy(t *testing.T) {
	ranked := rankedFixture(costDoc("best", 50), costDoc("good", 50))
	budget := mustBudget(1000, 0)

	sandwich := NewSandwichStrategy().Select(nil, ranked, budget)

	budget.Reset()
	primacy := NewPrimacyStrategy().Select(nil, ranked, budget)
	assert.Equal(t, admittedIDs(primacy), admittedIDs(sandwich))
	assert.Equal(t, []string{"best", "good"}, admittedIDs(sandwich))
}

func TestSandwich_NineDocumentSplit(t *testing.T) {
	// k = max(2, 9/3) = 3; start gets 3/2 = 1 document, end gets 2.
	docs := make([]Document, 9)
	for i := range docs {
		docs[i] = costDoc(string(rune('1'+i)), 10)
	}
	ranked := rankedFixture(docs...)
	budget := mustBudget(1000, 0)

	admitted := NewSandwichStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"1", "4", "5", "6", "7", "8", "9", "2", "3"}, admittedIDs(admitted))
}

func TestSandwich_ThreeDocuments(t *testing.T) {
	// k clamps to 2: start [d1], end [d2], middle [d3].
	ranked := rankedFixture(costDoc("1", 10), costDoc("2", 10), costDoc("3", 10))
	budget := mustBudget(1000, 0)

	admitted := NewSandwichStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"1", "3", "2"}, admittedIDs(admitted))
}

func TestSandwich_SixDocuments(t *testing.T) {
	// k = max(2, 6/3) = 2: start [d1], end [d2], middle [d3..d6].
	docs := make([]Document, 6)
	for i := range docs {
		docs[i] = costDoc(string(rune('1'+i)), 10)
	}
	ranked := rankedFixture(docs...)
	budget := mustBudget(1000, 0)

	admitted := NewSandwichStrategy().Select(nil, ranked, budget)

	assert.Equal(t, []string{"1", "3", "4", "5", "6", "2"}, admittedIDs(admitted))
}

func TestSandwich_StopsAtFirstNonFit(t *testing.T) {
	ranked := rankedFixture(
		costDoc("1", 50),
		costDoc("2", 50),
		costDoc("huge", 5000),
		costDoc("4", 10),
	)
	budget := mustBudget(200, 50)

	admitted := NewSandwichStrategy().Select(nil, ranked, budget)

	// Admission halts at "huge"; "4" is never considered even though it fits.
	assert.Equal(t, []string{"1", "2"}, admittedIDs(admitted))
}

func TestRegistry_Defaults(t *testing.T) {
	registry := NewDefaultRegistry()

	assert.Equal(t, []string{"naive", "primacy", "recency", "sandwich"}, registry.Names())

	for _, name := range registry.Names() {
		strategy, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
	}
}

func TestRegistry_UnknownStrategy(t *testing.T) {
	registry := NewDefaultRegistry()

	_, err := registry.Get("hierarchical-summary")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

type reverseStrategy struct{}

func (reverseStrategy) Name() string       { return "reverse" }
func (reverseStrategy) NeedsRanking() bool { return false }
func (reverseStrategy) Select(docs []Document, _ []RankedDocument, budget *Budget) []Document {
	var admitted []Document
	for i := len(docs) - 1; i >= 0; i-- {
		if !budget.Admit(budget.DocumentCost(docs[i])) {
			break
		}
		admitted = append(admitted, docs[i])
	}
	return admitted
}

func TestRegistry_CustomStrategy(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register(reverseStrategy{})

	strategy, err := registry.Get("reverse")
	require.NoError(t, err)

	budget := mustBudget(1000, 0)
	admitted := strategy.Select([]Document{costDoc("a", 1), costDoc("b", 1)}, nil, budget)
	assert.Equal(t, []string{"b", "a"}, admittedIDs(admitted))
}

func TestStrategies_RankingRequirements(t *testing.T) {
	assert.False(t, NewNaiveStrategy().NeedsRanking())
	assert.True(t, NewPrimacyStrategy().NeedsRanking())
	assert.True(t, NewRecencyStrategy().NeedsRanking())
	assert.True(t, NewSandwichStrategy().NeedsRanking())
}
