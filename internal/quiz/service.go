package quiz

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/certlab/certprep-lambda/internal/auth"
	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNoQuestions      = errors.New("quiz must contain at least one question")
	ErrInvalidMode      = errors.New("invalid quiz mode")
	ErrAlreadySubmitted = errors.New("quiz already submitted")
	ErrAnswerMismatch   = errors.New("answers do not match quiz questions")
)

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	SubmitQuiz(ctx context.Context, quizID uuid.UUID, dto SubmitQuizDTO) (*SubmissionResult, error)
	GetQuizWithQuestions(ctx context.Context, quizID uuid.UUID) (*Quiz, error)
	ListQuizzesByUser(ctx context.Context) ([]*Quiz, error)
}

type quizService struct {
	repo         QuizRepository
	mastery      mastery.Service
	progress     progress.Service
	gamification gamification.Service
}

func NewService(repo QuizRepository, masteryService mastery.Service, progressService progress.Service, gamificationService gamification.Service) QuizService {
	return &quizService{
		repo:         repo,
		mastery:      masteryService,
		progress:     progressService,
		gamification: gamificationService,
	}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// CreateQuiz builds a session from the supplied question pool. ADAPTIVE mode
// asks the progress engine how many questions this user should get and picks
// the ones whose difficulty sits closest to the user's current level per
// category.
func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "create quiz")
	if err != nil {
		return nil, err
	}

	if len(dto.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if dto.Mode == "" {
		dto.Mode = ModeStandard
	}
	if !dto.Mode.Valid() {
		return nil, ErrInvalidMode
	}

	baseCount := dto.BaseCount
	if baseCount < 1 || baseCount > len(dto.Questions) {
		baseCount = len(dto.Questions)
	}

	selected := dto.Questions
	if dto.Mode == ModeAdaptive {
		selected, err = s.selectAdaptive(ctx, userID, baseCount, dto.Questions)
		if err != nil {
			return nil, err
		}
	} else if baseCount < len(dto.Questions) {
		selected = dto.Questions[:baseCount]
	}

	q := &Quiz{
		ID:              uuid.New(),
		UserID:          userID,
		CertificationID: dto.CertificationID,
		Mode:            dto.Mode,
		TotalQuestions:  len(selected),
		CreatedAt:       time.Now(),
	}

	questions := make([]*QuizQuestion, 0, len(selected))
	for i, input := range selected {
		questions = append(questions, &QuizQuestion{
			ID:            uuid.New(),
			QuizID:        q.ID,
			CategoryID:    input.CategoryID,
			SubcategoryID: input.SubcategoryID,
			Content:       input.Content,
			Options:       input.Options,
			CorrectAnswer: input.CorrectAnswer,
			Explanation:   input.Explanation,
			Difficulty:    input.Difficulty,
			OrderIndex:    i,
		})
	}

	if err := s.repo.Create(q, questions); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	q.Questions = make([]QuizQuestion, 0, len(questions))
	for _, question := range questions {
		q.Questions = append(q.Questions, *question)
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   q.ID,
		"mode":      q.Mode,
		"questions": len(questions),
	}).Info("Quiz created")
	return q, nil
}

func (s *quizService) selectAdaptive(ctx context.Context, userID uuid.UUID, baseCount int, pool []QuestionInput) ([]QuestionInput, error) {
	categorySet := make(map[uuid.UUID]bool)
	var categoryIDs []uuid.UUID
	for _, input := range pool {
		if !categorySet[input.CategoryID] {
			categorySet[input.CategoryID] = true
			categoryIDs = append(categoryIDs, input.CategoryID)
		}
	}

	target, err := s.progress.AdaptiveQuestionCount(ctx, userID, baseCount, categoryIDs)
	if err != nil {
		return nil, err
	}
	if target >= len(pool) {
		return pool, nil
	}

	difficulties := make(map[uuid.UUID]int, len(categoryIDs))
	list, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		difficulties[p.CategoryID] = p.AdaptiveDifficulty
	}

	// Stable sort by distance from the per-category target difficulty, so
	// ties keep pool order and selection stays deterministic.
	ranked := make([]QuestionInput, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return difficultyGap(ranked[i], difficulties) < difficultyGap(ranked[j], difficulties)
	})
	return ranked[:target], nil
}

func difficultyGap(input QuestionInput, difficulties map[uuid.UUID]int) int {
	target, ok := difficulties[input.CategoryID]
	if !ok {
		target = 1
	}
	gap := input.Difficulty - target
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// SubmitQuiz grades a submission and runs the engine pipeline in order:
// mastery counters, per-category adaptation, streak, badge evaluation.
// Validation happens before any write; a malformed submission mutates
// nothing.
func (s *quizService) SubmitQuiz(ctx context.Context, quizID uuid.UUID, dto SubmitQuizDTO) (*SubmissionResult, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "submit quiz")
	if err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for submission")
		return nil, err
	}
	if q == nil || q.UserID != userID {
		return nil, ErrQuizNotFound
	}
	if q.CompletedAt != nil {
		return nil, ErrAlreadySubmitted
	}
	if len(q.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	selectedByQuestion := make(map[uuid.UUID]string, len(dto.Answers))
	for _, answer := range dto.Answers {
		if _, dup := selectedByQuestion[answer.QuestionID]; dup {
			return nil, ErrAnswerMismatch
		}
		selectedByQuestion[answer.QuestionID] = answer.Selected
	}
	if len(selectedByQuestion) != len(q.Questions) {
		return nil, ErrAnswerMismatch
	}

	now := time.Now()
	outcomes := make([]progress.AnswerOutcome, 0, len(q.Questions))
	answers := make([]*QuizAnswer, 0, len(q.Questions))
	correctCount := 0

	for _, question := range q.Questions {
		selected, ok := selectedByQuestion[question.ID]
		if !ok {
			return nil, ErrAnswerMismatch
		}
		isCorrect := selected == question.CorrectAnswer
		if isCorrect {
			correctCount++
		}

		outcomes = append(outcomes, progress.AnswerOutcome{
			QuestionID:    question.ID,
			CategoryID:    question.CategoryID,
			SubcategoryID: question.SubcategoryID,
			IsCorrect:     isCorrect,
		})
		answers = append(answers, &QuizAnswer{
			ID:            uuid.New(),
			QuizID:        q.ID,
			QuestionID:    question.ID,
			CategoryID:    question.CategoryID,
			SubcategoryID: question.SubcategoryID,
			Selected:      selected,
			IsCorrect:     isCorrect,
			AnsweredAt:    now,
		})
	}

	if err := s.repo.AddAnswers(answers); err != nil {
		log.WithError(err).Error("Failed to persist quiz answers")
		return nil, err
	}

	q.CorrectCount = correctCount
	q.Score = int(math.Round(100 * float64(correctCount) / float64(len(q.Questions))))
	q.CompletedAt = &now
	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to mark quiz as completed")
		return nil, err
	}

	result := &SubmissionResult{
		QuizID:         q.ID,
		Score:          q.Score,
		CorrectCount:   correctCount,
		TotalQuestions: len(q.Questions),
	}

	// Mastery counters, one bulk update per (category, subcategory) group.
	for _, group := range groupOutcomes(outcomes) {
		record, err := s.mastery.ApplyBulk(ctx, userID, group.categoryID, group.subcategoryID, group.correct, group.total)
		if err != nil {
			log.WithError(err).Error("Failed to update mastery record")
			return nil, err
		}
		result.Mastery = append(result.Mastery, record)
	}

	// Adaptation state, per category, outcomes in submission order.
	for _, categoryID := range categoryOrder(outcomes) {
		categoryOutcomes := make([]progress.AnswerOutcome, 0, len(outcomes))
		for _, outcome := range outcomes {
			if outcome.CategoryID == categoryID {
				categoryOutcomes = append(categoryOutcomes, outcome)
			}
		}
		p, err := s.progress.UpdateProgress(ctx, userID, categoryID, categoryOutcomes)
		if err != nil {
			log.WithError(err).Error("Failed to update category progress")
			return nil, err
		}
		result.Progress = append(result.Progress, p)
	}

	if _, err := s.gamification.RecordActivity(ctx, userID, now); err != nil {
		log.WithError(err).Error("Failed to record streak activity")
		return nil, err
	}

	awarded, err := s.gamification.Evaluate(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate achievements")
		return nil, err
	}
	result.NewBadges = awarded

	stats, err := s.gamification.GetStats(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load game stats")
		return nil, err
	}
	result.Stats = stats

	log.WithFields(logrus.Fields{
		"quiz_id":    q.ID,
		"score":      q.Score,
		"new_badges": len(awarded),
	}).Info("Quiz submitted")
	return result, nil
}

type outcomeGroup struct {
	categoryID    uuid.UUID
	subcategoryID uuid.UUID
	correct       int
	total         int
}

// groupOutcomes folds outcomes into per-(category, subcategory) counters,
// preserving first-seen order.
func groupOutcomes(outcomes []progress.AnswerOutcome) []*outcomeGroup {
	index := make(map[[2]uuid.UUID]*outcomeGroup)
	var groups []*outcomeGroup
	for _, outcome := range outcomes {
		key := [2]uuid.UUID{outcome.CategoryID, outcome.SubcategoryID}
		group, ok := index[key]
		if !ok {
			group = &outcomeGroup{categoryID: outcome.CategoryID, subcategoryID: outcome.SubcategoryID}
			index[key] = group
			groups = append(groups, group)
		}
		group.total++
		if outcome.IsCorrect {
			group.correct++
		}
	}
	return groups
}

func categoryOrder(outcomes []progress.AnswerOutcome) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var order []uuid.UUID
	for _, outcome := range outcomes {
		if !seen[outcome.CategoryID] {
			seen[outcome.CategoryID] = true
			order = append(order, outcome.CategoryID)
		}
	}
	return order
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "get quiz")
	if err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil || q.UserID != userID {
		return nil, ErrQuizNotFound
	}

	// Answers and explanations stay hidden until the quiz is submitted.
	if q.CompletedAt == nil {
		for i := range q.Questions {
			q.Questions[i].CorrectAnswer = ""
			q.Questions[i].Explanation = nil
		}
	}
	return q, nil
}

func (s *quizService) ListQuizzesByUser(ctx context.Context) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list quizzes")
	if err != nil {
		return nil, err
	}

	quizzes, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		return nil, err
	}
	return quizzes, nil
}
