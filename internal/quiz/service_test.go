package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/certlab/certprep-lambda/internal/auth"
	"github.com/certlab/certprep-lambda/internal/gamification"
	"github.com/certlab/certprep-lambda/internal/mastery"
	"github.com/certlab/certprep-lambda/internal/progress"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*Quiz
	answers []*QuizAnswer
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uuid.UUID]*Quiz)}
}

func (r *fakeQuizRepo) Create(q *Quiz, questions []*QuizQuestion) error {
	cp := *q
	cp.Questions = make([]QuizQuestion, 0, len(questions))
	for _, question := range questions {
		cp.Questions = append(cp.Questions, *question)
	}
	r.quizzes[q.ID] = &cp
	return nil
}

func (r *fakeQuizRepo) GetByID(id uuid.UUID) (*Quiz, error) {
	q, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	cp.Questions = make([]QuizQuestion, len(q.Questions))
	copy(cp.Questions, q.Questions)
	return &cp, nil
}

func (r *fakeQuizRepo) Update(q *Quiz) error {
	cp := *q
	cp.Questions = make([]QuizQuestion, len(q.Questions))
	copy(cp.Questions, q.Questions)
	r.quizzes[q.ID] = &cp
	return nil
}

func (r *fakeQuizRepo) AddAnswers(answers []*QuizAnswer) error {
	r.answers = append(r.answers, answers...)
	return nil
}

func (r *fakeQuizRepo) ListByUser(userID uuid.UUID) ([]*Quiz, error) {
	var list []*Quiz
	for _, q := range r.quizzes {
		if q.UserID == userID {
			list = append(list, q)
		}
	}
	return list, nil
}

func (r *fakeQuizRepo) ListAnswersByQuiz(quizID uuid.UUID) ([]*QuizAnswer, error) {
	var list []*QuizAnswer
	for _, a := range r.answers {
		if a.QuizID == quizID {
			list = append(list, a)
		}
	}
	return list, nil
}

type fakeMasteryRepo struct {
	records map[[3]uuid.UUID]*mastery.MasteryRecord
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[[3]uuid.UUID]*mastery.MasteryRecord)}
}

func (r *fakeMasteryRepo) FindByKey(userID, categoryID, subcategoryID uuid.UUID) (*mastery.MasteryRecord, error) {
	record, ok := r.records[[3]uuid.UUID{userID, categoryID, subcategoryID}]
	if !ok {
		return nil, nil
	}
	cp := *record
	return &cp, nil
}

func (r *fakeMasteryRepo) ListByUser(userID uuid.UUID) ([]*mastery.MasteryRecord, error) {
	var list []*mastery.MasteryRecord
	for _, record := range r.records {
		if record.UserID == userID {
			list = append(list, record)
		}
	}
	return list, nil
}

func (r *fakeMasteryRepo) ListByUserAndCategory(userID, categoryID uuid.UUID) ([]*mastery.MasteryRecord, error) {
	var list []*mastery.MasteryRecord
	for _, record := range r.records {
		if record.UserID == userID && record.CategoryID == categoryID {
			list = append(list, record)
		}
	}
	return list, nil
}

func (r *fakeMasteryRepo) Create(record *mastery.MasteryRecord) error {
	cp := *record
	r.records[[3]uuid.UUID{record.UserID, record.CategoryID, record.SubcategoryID}] = &cp
	return nil
}

func (r *fakeMasteryRepo) Update(record *mastery.MasteryRecord) error {
	return r.Create(record)
}

type fakeProgressRepo struct {
	entries map[[2]uuid.UUID]*progress.CategoryProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[[2]uuid.UUID]*progress.CategoryProgress)}
}

func (r *fakeProgressRepo) FindByKey(userID, categoryID uuid.UUID) (*progress.CategoryProgress, error) {
	p, ok := r.entries[[2]uuid.UUID{userID, categoryID}]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProgressRepo) ListByUser(userID uuid.UUID) ([]*progress.CategoryProgress, error) {
	var list []*progress.CategoryProgress
	for _, p := range r.entries {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProgressRepo) ListByUserAndCategories(userID uuid.UUID, categoryIDs []uuid.UUID) ([]*progress.CategoryProgress, error) {
	var list []*progress.CategoryProgress
	for _, categoryID := range categoryIDs {
		if p, ok := r.entries[[2]uuid.UUID{userID, categoryID}]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProgressRepo) Save(p *progress.CategoryProgress) error {
	cp := *p
	r.entries[[2]uuid.UUID{p.UserID, p.CategoryID}] = &cp
	return nil
}

// fakeGamRepo answers catalog and stats queries from memory and derives quiz
// summaries from the quiz repo, like the real one does from the quizzes table.
type fakeGamRepo struct {
	quizRepo   *fakeQuizRepo
	badges     []*gamification.Badge
	userBadges []*gamification.UserBadge
	stats      map[uuid.UUID]*gamification.GameStats
}

func newFakeGamRepo(quizRepo *fakeQuizRepo) *fakeGamRepo {
	return &fakeGamRepo{
		quizRepo: quizRepo,
		stats:    make(map[uuid.UUID]*gamification.GameStats),
	}
}

func (r *fakeGamRepo) ListBadges() ([]*gamification.Badge, error) {
	return r.badges, nil
}

func (r *fakeGamRepo) UpsertBadge(b *gamification.Badge) error {
	for i, existing := range r.badges {
		if existing.Key == b.Key {
			r.badges[i] = b
			return nil
		}
	}
	r.badges = append(r.badges, b)
	return nil
}

func (r *fakeGamRepo) ListUserBadges(userID uuid.UUID) ([]*gamification.UserBadge, error) {
	var list []*gamification.UserBadge
	for _, ub := range r.userBadges {
		if ub.UserID == userID {
			list = append(list, ub)
		}
	}
	return list, nil
}

func (r *fakeGamRepo) CreateUserBadge(ub *gamification.UserBadge) error {
	r.userBadges = append(r.userBadges, ub)
	return nil
}

func (r *fakeGamRepo) MarkNotified(userID uuid.UUID) error {
	for _, ub := range r.userBadges {
		if ub.UserID == userID {
			ub.IsNotified = true
		}
	}
	return nil
}

func (r *fakeGamRepo) GetStats(userID uuid.UUID) (*gamification.GameStats, error) {
	stats, ok := r.stats[userID]
	if !ok {
		return nil, nil
	}
	cp := *stats
	return &cp, nil
}

func (r *fakeGamRepo) SaveStats(stats *gamification.GameStats) error {
	cp := *stats
	r.stats[stats.UserID] = &cp
	return nil
}

func (r *fakeGamRepo) ListQuizSummaries(userID uuid.UUID) ([]gamification.QuizSummary, error) {
	var summaries []gamification.QuizSummary
	for _, q := range r.quizRepo.quizzes {
		if q.UserID == userID && q.CompletedAt != nil {
			summaries = append(summaries, gamification.QuizSummary{Score: q.Score, Mode: string(q.Mode)})
		}
	}
	return summaries, nil
}

func (r *fakeGamRepo) ListCompletionDates(userID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	for _, q := range r.quizRepo.quizzes {
		if q.UserID == userID && q.CompletedAt != nil {
			dates = append(dates, *q.CompletedAt)
		}
	}
	return dates, nil
}

func (r *fakeGamRepo) CountStudyGuides(userID uuid.UUID) (int, error) {
	return 0, nil
}

type testEnv struct {
	quizRepo     *fakeQuizRepo
	masteryRepo  *fakeMasteryRepo
	progressRepo *fakeProgressRepo
	gamRepo      *fakeGamRepo
	service      QuizService
}

func newTestEnv() *testEnv {
	quizRepo := newFakeQuizRepo()
	masteryRepo := newFakeMasteryRepo()
	progressRepo := newFakeProgressRepo()
	gamRepo := newFakeGamRepo(quizRepo)

	gamRepo.badges = append(gamRepo.badges, &gamification.Badge{
		ID:                uuid.New(),
		Key:               "first_quiz",
		Name:              "First Steps",
		Category:          gamification.BadgeCategoryProgress,
		RequirementType:   gamification.RequirementQuizCompleted,
		RequirementParams: gamification.RequirementParams{Count: 1}.JSON(),
		Points:            10,
		Rarity:            gamification.RarityCommon,
	})

	masteryService := mastery.NewService(masteryRepo)
	progressService := progress.NewService(progressRepo, progress.DefaultAdaptivePolicy())
	gamService := gamification.NewService(gamRepo, masteryRepo)

	return &testEnv{
		quizRepo:     quizRepo,
		masteryRepo:  masteryRepo,
		progressRepo: progressRepo,
		gamRepo:      gamRepo,
		service:      NewService(quizRepo, masteryService, progressService, gamService),
	}
}

func userContext(userID uuid.UUID) context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: userID.String(),
		Role:   "USER",
	})
}

func question(categoryID, subcategoryID uuid.UUID, answer string, difficulty int) QuestionInput {
	return QuestionInput{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Content:       "What does the control plane do?",
		Options:       datatypes.JSON([]byte(`["A","B","C","D"]`)),
		CorrectAnswer: answer,
		Difficulty:    difficulty,
	}
}

func TestCreateQuizRequiresAuthentication(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.CreateQuiz(context.Background(), CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Expected: ErrUnauthorized, got: %v", err)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	env := newTestEnv()
	ctx := userContext(uuid.New())

	t.Run("EmptyPoolIsRejected", func(t *testing.T) {
		_, err := env.service.CreateQuiz(ctx, CreateQuizDTO{CertificationID: uuid.New()})
		if !errors.Is(err, ErrNoQuestions) {
			t.Errorf("Expected: ErrNoQuestions, got: %v", err)
		}
	})

	t.Run("UnknownModeIsRejected", func(t *testing.T) {
		_, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
			CertificationID: uuid.New(),
			Mode:            QuizMode("SPEEDRUN"),
			Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
		})
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("Expected: ErrInvalidMode, got: %v", err)
		}
	})

	t.Run("ModeDefaultsToStandard", func(t *testing.T) {
		q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
			CertificationID: uuid.New(),
			Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
		})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if q.Mode != ModeStandard {
			t.Errorf("Expected mode: %s, got: %s", ModeStandard, q.Mode)
		}
		if q.TotalQuestions != 1 {
			t.Errorf("Expected 1 question, got: %d", q.TotalQuestions)
		}
	})
}

func TestSubmitQuizGradesAndRunsPipeline(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	ctx := userContext(userID)

	categoryA := uuid.New()
	categoryB := uuid.New()
	subNetworking := uuid.New()
	subStorage := uuid.New()
	subSecurity := uuid.New()

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions: []QuestionInput{
			question(categoryA, subNetworking, "A", 2),
			question(categoryA, subNetworking, "B", 2),
			question(categoryA, subStorage, "C", 3),
			question(categoryB, subSecurity, "D", 1),
		},
	})
	if err != nil {
		t.Fatalf("Expected no error creating quiz, got: %v", err)
	}

	// One wrong answer on the second networking question.
	answers := []SubmittedAnswer{
		{QuestionID: q.Questions[0].ID, Selected: "A"},
		{QuestionID: q.Questions[1].ID, Selected: "A"},
		{QuestionID: q.Questions[2].ID, Selected: "C"},
		{QuestionID: q.Questions[3].ID, Selected: "D"},
	}

	result, err := env.service.SubmitQuiz(ctx, q.ID, SubmitQuizDTO{Answers: answers})
	if err != nil {
		t.Fatalf("Expected no error submitting quiz, got: %v", err)
	}

	if result.CorrectCount != 3 {
		t.Errorf("Expected 3 correct, got: %d", result.CorrectCount)
	}
	if result.Score != 75 {
		t.Errorf("Expected score 75, got: %d", result.Score)
	}
	if result.TotalQuestions != 4 {
		t.Errorf("Expected 4 questions, got: %d", result.TotalQuestions)
	}

	stored, _ := env.quizRepo.GetByID(q.ID)
	if stored.CompletedAt == nil {
		t.Fatal("Expected quiz to be marked completed")
	}
	if stored.Score != 75 {
		t.Errorf("Expected stored score 75, got: %d", stored.Score)
	}

	if len(result.Mastery) != 3 {
		t.Fatalf("Expected 3 mastery records, got: %d", len(result.Mastery))
	}
	networking, _ := env.masteryRepo.FindByKey(userID, categoryA, subNetworking)
	if networking == nil {
		t.Fatal("Expected networking mastery record to exist")
	}
	if networking.TotalAnswers != 2 || networking.CorrectAnswers != 1 {
		t.Errorf("Expected counters 1/2, got: %d/%d", networking.CorrectAnswers, networking.TotalAnswers)
	}
	if networking.RollingAverage != 50 {
		t.Errorf("Expected rolling average 50, got: %d", networking.RollingAverage)
	}

	if len(result.Progress) != 2 {
		t.Fatalf("Expected progress for 2 categories, got: %d", len(result.Progress))
	}
	if result.Progress[0].CategoryID != categoryA {
		t.Errorf("Expected first progress entry for the first category seen")
	}

	if len(result.NewBadges) != 1 {
		t.Fatalf("Expected 1 new badge, got: %d", len(result.NewBadges))
	}
	if result.NewBadges[0].Badge.Key != "first_quiz" {
		t.Errorf("Expected badge first_quiz, got: %s", result.NewBadges[0].Badge.Key)
	}

	if result.Stats == nil {
		t.Fatal("Expected stats in submission result")
	}
	if result.Stats.TotalPoints != 10 {
		t.Errorf("Expected 10 points, got: %d", result.Stats.TotalPoints)
	}
	if result.Stats.CurrentStreak != 1 {
		t.Errorf("Expected streak 1, got: %d", result.Stats.CurrentStreak)
	}

	if len(env.quizRepo.answers) != 4 {
		t.Errorf("Expected 4 persisted answers, got: %d", len(env.quizRepo.answers))
	}
}

func TestSubmitQuizTwiceIsRejected(t *testing.T) {
	env := newTestEnv()
	ctx := userContext(uuid.New())

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	dto := SubmitQuizDTO{Answers: []SubmittedAnswer{{QuestionID: q.Questions[0].ID, Selected: "A"}}}
	if _, err := env.service.SubmitQuiz(ctx, q.ID, dto); err != nil {
		t.Fatalf("Expected first submission to succeed, got: %v", err)
	}

	_, err = env.service.SubmitQuiz(ctx, q.ID, dto)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("Expected: ErrAlreadySubmitted, got: %v", err)
	}
}

func TestSubmitQuizAnswerMismatchMutatesNothing(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	ctx := userContext(userID)

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions: []QuestionInput{
			question(uuid.New(), uuid.New(), "A", 1),
			question(uuid.New(), uuid.New(), "B", 1),
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	t.Run("MissingAnswer", func(t *testing.T) {
		_, err := env.service.SubmitQuiz(ctx, q.ID, SubmitQuizDTO{
			Answers: []SubmittedAnswer{{QuestionID: q.Questions[0].ID, Selected: "A"}},
		})
		if !errors.Is(err, ErrAnswerMismatch) {
			t.Errorf("Expected: ErrAnswerMismatch, got: %v", err)
		}
	})

	t.Run("DuplicateAnswer", func(t *testing.T) {
		_, err := env.service.SubmitQuiz(ctx, q.ID, SubmitQuizDTO{
			Answers: []SubmittedAnswer{
				{QuestionID: q.Questions[0].ID, Selected: "A"},
				{QuestionID: q.Questions[0].ID, Selected: "B"},
			},
		})
		if !errors.Is(err, ErrAnswerMismatch) {
			t.Errorf("Expected: ErrAnswerMismatch, got: %v", err)
		}
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := env.service.SubmitQuiz(ctx, q.ID, SubmitQuizDTO{
			Answers: []SubmittedAnswer{
				{QuestionID: q.Questions[0].ID, Selected: "A"},
				{QuestionID: uuid.New(), Selected: "B"},
			},
		})
		if !errors.Is(err, ErrAnswerMismatch) {
			t.Errorf("Expected: ErrAnswerMismatch, got: %v", err)
		}
	})

	if len(env.masteryRepo.records) != 0 {
		t.Errorf("Expected no mastery records, got: %d", len(env.masteryRepo.records))
	}
	if len(env.progressRepo.entries) != 0 {
		t.Errorf("Expected no progress entries, got: %d", len(env.progressRepo.entries))
	}
	if len(env.quizRepo.answers) != 0 {
		t.Errorf("Expected no persisted answers, got: %d", len(env.quizRepo.answers))
	}
	stored, _ := env.quizRepo.GetByID(q.ID)
	if stored.CompletedAt != nil {
		t.Error("Expected quiz to stay open after rejected submissions")
	}
}

func TestSubmitQuizOwnedByAnotherUser(t *testing.T) {
	env := newTestEnv()
	owner := userContext(uuid.New())

	q, err := env.service.CreateQuiz(owner, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	intruder := userContext(uuid.New())
	_, err = env.service.SubmitQuiz(intruder, q.ID, SubmitQuizDTO{
		Answers: []SubmittedAnswer{{QuestionID: q.Questions[0].ID, Selected: "A"}},
	})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Expected: ErrQuizNotFound, got: %v", err)
	}
}

func TestAdaptiveCreateSizesFromProgress(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	ctx := userContext(userID)
	categoryID := uuid.New()
	subcategoryID := uuid.New()

	// Struggling user: wrong streak at the lower threshold and minimum
	// difficulty. Both sizing bonuses apply: 10 * 1.8 = 18.
	env.progressRepo.Save(&progress.CategoryProgress{
		ID:                 uuid.New(),
		UserID:             userID,
		CategoryID:         categoryID,
		ConsecutiveWrong:   3,
		AdaptiveDifficulty: 1,
	})

	pool := make([]QuestionInput, 0, 20)
	for i := 0; i < 10; i++ {
		pool = append(pool, question(categoryID, subcategoryID, "A", 5))
	}
	for i := 0; i < 10; i++ {
		pool = append(pool, question(categoryID, subcategoryID, "A", 1))
	}

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Mode:            ModeAdaptive,
		BaseCount:       10,
		Questions:       pool,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if q.TotalQuestions != 18 {
		t.Errorf("Expected 18 questions, got: %d", q.TotalQuestions)
	}
	// Difficulty-1 questions sit at the user's level and must come first.
	for i := 0; i < 10; i++ {
		if q.Questions[i].Difficulty != 1 {
			t.Fatalf("Expected question %d at difficulty 1, got: %d", i, q.Questions[i].Difficulty)
		}
	}
}

func TestAdaptiveCreatePrefersCurrentDifficulty(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	ctx := userContext(userID)
	categoryID := uuid.New()
	subcategoryID := uuid.New()

	env.progressRepo.Save(&progress.CategoryProgress{
		ID:                 uuid.New(),
		UserID:             userID,
		CategoryID:         categoryID,
		AdaptiveDifficulty: 3,
	})

	pool := []QuestionInput{
		question(categoryID, subcategoryID, "A", 1),
		question(categoryID, subcategoryID, "A", 3),
		question(categoryID, subcategoryID, "A", 5),
		question(categoryID, subcategoryID, "A", 3),
	}

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Mode:            ModeAdaptive,
		BaseCount:       2,
		Questions:       pool,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if q.TotalQuestions != 2 {
		t.Fatalf("Expected 2 questions, got: %d", q.TotalQuestions)
	}
	for i, question := range q.Questions {
		if question.Difficulty != 3 {
			t.Errorf("Expected question %d at difficulty 3, got: %d", i, question.Difficulty)
		}
	}
}

func TestGetQuizHidesAnswersUntilCompleted(t *testing.T) {
	env := newTestEnv()
	ctx := userContext(uuid.New())

	explanation := "Because the scheduler places pods."
	input := question(uuid.New(), uuid.New(), "A", 1)
	input.Explanation = &explanation

	q, err := env.service.CreateQuiz(ctx, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions:       []QuestionInput{input},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	open, err := env.service.GetQuizWithQuestions(ctx, q.ID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if open.Questions[0].CorrectAnswer != "" {
		t.Errorf("Expected correct answer hidden, got: %s", open.Questions[0].CorrectAnswer)
	}
	if open.Questions[0].Explanation != nil {
		t.Error("Expected explanation hidden before submission")
	}

	_, err = env.service.SubmitQuiz(ctx, q.ID, SubmitQuizDTO{
		Answers: []SubmittedAnswer{{QuestionID: q.Questions[0].ID, Selected: "A"}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	completed, err := env.service.GetQuizWithQuestions(ctx, q.ID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if completed.Questions[0].CorrectAnswer != "A" {
		t.Errorf("Expected correct answer visible after submission, got: %s", completed.Questions[0].CorrectAnswer)
	}
	if completed.Questions[0].Explanation == nil {
		t.Error("Expected explanation visible after submission")
	}
}

func TestListQuizzesByUserIsScoped(t *testing.T) {
	env := newTestEnv()
	first := userContext(uuid.New())
	second := userContext(uuid.New())

	if _, err := env.service.CreateQuiz(first, CreateQuizDTO{
		CertificationID: uuid.New(),
		Questions:       []QuestionInput{question(uuid.New(), uuid.New(), "A", 1)},
	}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	list, err := env.service.ListQuizzesByUser(second)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected no quizzes for another user, got: %d", len(list))
	}
}
