package eval

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/contextpack/contextpack/pkg/assembly"
	"github.com/contextpack/contextpack/pkg/docs"
	"github.com/contextpack/contextpack/pkg/embed"
	"github.com/contextpack/contextpack/pkg/events"
	"github.com/contextpack/contextpack/pkg/llm"
	"github.com/contextpack/contextpack/pkg/logging"
)

// ScoreMethod selects how a generated answer is graded against the
// reference answer.
type ScoreMethod string

const (
	// ScoreSemantic grades by embedding similarity alone.
	ScoreSemantic ScoreMethod = "semantic"
	// ScoreJudge asks the generator to grade the answer on a 0-10 scale.
	ScoreJudge ScoreMethod = "llm_judge"
	// ScoreHybrid averages the semantic and judge scores.
	ScoreHybrid ScoreMethod = "hybrid"
)

var (
	// ErrMissingGenerator is returned when a scoring method needs an LLM
	// and none was provided.
	ErrMissingGenerator = errors.New("eval: generator required")
	// ErrMissingEmbedder is returned when semantic scoring is requested
	// without an embedding collaborator.
	ErrMissingEmbedder = errors.New("eval: embedder required")
)

const qaPromptFormat = `Based on the following context, answer the question concisely and accurately.

Context:
%s

Question: %s

Answer:`

const judgePromptFormat = `You are an expert evaluator. Compare the following two answers and rate how similar they are in meaning.

Reference Answer: %s

Generated Answer: %s

Rate the similarity on a scale from 0 to 10, where:
- 0 = Completely different or wrong
- 5 = Partially correct, captures some key points
- 10 = Essentially the same meaning, fully correct

Provide ONLY a single number from 0-10 as your response.

Rating:`

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Evaluator grades context assembly quality end to end: it generates
// answers from assembled contexts and scores them against references.
type Evaluator struct {
	generator llm.Generator
	embedder  embed.Embedder
	publisher events.Publisher
	logger    logging.Logger
}

// NewEvaluator creates an evaluator. embedder may be nil if only judge
// scoring is used; generator may be nil if only semantic scoring is used.
func NewEvaluator(generator llm.Generator, embedder embed.Embedder, publisher events.Publisher, logger logging.Logger) *Evaluator {
	if publisher == nil {
		publisher = &events.NoOpPublisher{}
	}
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	return &Evaluator{
		generator: generator,
		embedder:  embedder,
		publisher: publisher,
		logger:    logger,
	}
}

// GenerateAnswer asks the generator to answer question given an assembled
// context string.
func (e *Evaluator) GenerateAnswer(ctx context.Context, contextText, question string, opts llm.Options) (string, error) {
	if e.generator == nil {
		return "", ErrMissingGenerator
	}
	prompt := fmt.Sprintf(qaPromptFormat, contextText, question)
	return e.generator.Generate(ctx, prompt, opts)
}

// ScoreAnswer grades answer against groundTruth on a 0-1 scale.
func (e *Evaluator) ScoreAnswer(ctx context.Context, answer, groundTruth string, method ScoreMethod) (float64, error) {
	switch method {
	case ScoreSemantic:
		return e.semanticScore(ctx, answer, groundTruth)
	case ScoreJudge:
		return e.judgeScore(ctx, answer, groundTruth)
	case ScoreHybrid:
		semantic, err := e.semanticScore(ctx, answer, groundTruth)
		if err != nil {
			return 0, err
		}
		judged, err := e.judgeScore(ctx, answer, groundTruth)
		if err != nil {
			return 0, err
		}
		return (semantic + judged) / 2, nil
	default:
		return 0, fmt.Errorf("eval: unknown scoring method %q", method)
	}
}

// semanticScore maps cosine similarity from [-1, 1] onto [0, 1].
func (e *Evaluator) semanticScore(ctx context.Context, answer, groundTruth string) (float64, error) {
	if e.embedder == nil {
		return 0, ErrMissingEmbedder
	}

	answerVec, err := e.embedder.Embed(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("embedding answer: %w", err)
	}
	truthVec, err := e.embedder.Embed(ctx, groundTruth)
	if err != nil {
		return 0, fmt.Errorf("embedding reference: %w", err)
	}

	score := (embed.Cosine(answerVec, truthVec) + 1) / 2
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

// judgeScore prompts the generator for a 0-10 rating and normalizes it.
// An unparseable rating scores 0.5 rather than failing the run.
func (e *Evaluator) judgeScore(ctx context.Context, answer, groundTruth string) (float64, error) {
	if e.generator == nil {
		return 0, ErrMissingGenerator
	}

	prompt := fmt.Sprintf(judgePromptFormat, groundTruth, answer)
	response, err := e.generator.Generate(ctx, prompt, llm.Options{MaxTokens: 5, Temperature: 0.1})
	if err != nil {
		return 0, fmt.Errorf("judging answer: %w", err)
	}

	match := numberPattern.FindString(response)
	if match == "" {
		return 0.5, nil
	}
	raw, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0.5, nil
	}
	if raw < 0 {
		raw = 0
	}
	if raw > 10 {
		raw = 10
	}
	return raw / 10, nil
}

// EvaluateStrategy runs the full loop for one placement strategy: assemble
// a context per question, generate an answer, score it, and aggregate.
func (e *Evaluator) EvaluateStrategy(ctx context.Context, assembler *assembly.Assembler, documents []assembly.Document, questions []docs.Question, assembleOpts assembly.Options, genOpts llm.Options, method ScoreMethod) (*Run, error) {
	run := &Run{
		RunID:    uuid.New().String(),
		Strategy: assembleOpts.Strategy,
		Method:   method,
	}

	for _, question := range questions {
		result, err := assembler.Assemble(ctx, documents, question.Question, assembleOpts)
		if err != nil {
			return nil, fmt.Errorf("assembling context for %q: %w", question.Question, err)
		}

		answer, err := e.GenerateAnswer(ctx, result.Context, question.Question, genOpts)
		if err != nil {
			return nil, fmt.Errorf("generating answer for %q: %w", question.Question, err)
		}

		score, err := e.ScoreAnswer(ctx, answer, question.GroundTruth, method)
		if err != nil {
			return nil, fmt.Errorf("scoring answer for %q: %w", question.Question, err)
		}

		run.Results = append(run.Results, QuestionResult{
			QuestionID:  question.ID,
			Question:    question.Question,
			Answer:      answer,
			GroundTruth: question.GroundTruth,
			Score:       score,
			TokensUsed:  result.TokensUsed,
		})

		e.logger.Debug("question evaluated",
			"strategy", run.Strategy,
			"question", question.Question,
			"score", score,
			"tokens_used", result.TokensUsed,
		)
	}

	run.Metrics = ComputeMetrics(run.Results)

	e.publisher.Publish(events.EvalCompletedEvent{}.Topic(), events.EvalCompletedEvent{
		RunID:     run.RunID,
		Strategy:  run.Strategy,
		Questions: len(run.Results),
		MeanScore: run.Metrics.MeanScore,
	})

	return run, nil
}
