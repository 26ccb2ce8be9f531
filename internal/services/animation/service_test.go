package animation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/tenzies/internal/common/clock"
	clockMocks "github.com/KirkDiggler/tenzies/internal/common/clock/mocks"
	"github.com/KirkDiggler/tenzies/internal/common/uuid"
	"github.com/KirkDiggler/tenzies/internal/dice"
	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/round"
	roundMocks "github.com/KirkDiggler/tenzies/internal/services/round/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnimationServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoundService *roundMocks.MockService
	scheduler        *clock.Manual
	animationService Service
	ctx              context.Context

	// Test data
	testTime  time.Time
	testEpoch uint64
	testFrame *round.RollFrameOutput
	testRound models.Round
	testBest  int
	frames    []Frame
	results   []*Result
	playInput *PlayInput
}

func (s *AnimationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoundService = roundMocks.NewMockService(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.scheduler = clock.NewManual(s.testTime)
	s.ctx = context.Background()

	s.testEpoch = 1
	s.testBest = 3
	s.testFrame = &round.RollFrameOutput{
		Status: models.StatusOK,
		Values: [models.DiceCount]int{1, 2, 3, 4, 5, 6, 1, 2, 3, 4},
	}
	s.testRound = models.Round{
		ID:        "test-round-id",
		Epoch:     s.testEpoch,
		RollCount: 3,
		MaxRolls:  10,
	}
	s.frames = nil
	s.results = nil
	s.playInput = &PlayInput{
		OnFrame:    func(frame Frame) { s.frames = append(s.frames, frame) },
		OnComplete: func(result *Result) { s.results = append(s.results, result) },
	}

	svc, err := New(&Config{
		RoundService: s.mockRoundService,
		Scheduler:    s.scheduler,
	})
	s.Require().NoError(err)
	s.animationService = svc
}

func (s *AnimationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnimationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimationServiceTestSuite))
}

func (s *AnimationServiceTestSuite) expectStart(status models.Status, epoch uint64) {
	s.mockRoundService.EXPECT().
		StartRoll(gomock.Any(), &round.StartRollInput{}).
		Return(&round.StartRollOutput{Status: status, Epoch: epoch}, nil)
}

func (s *AnimationServiceTestSuite) expectCommit(epoch uint64) {
	s.mockRoundService.EXPECT().
		CommitRoll(gomock.Any(), &round.CommitRollInput{Epoch: epoch}).
		Return(&round.CommitRollOutput{Status: models.StatusOK, Round: s.testRound}, nil).
		Times(1)
	s.mockRoundService.EXPECT().
		Evaluate(gomock.Any(), &round.EvaluateInput{}).
		Return(&round.EvaluateOutput{
			Outcome:   models.OutcomeWon,
			RollCount: s.testRound.RollCount,
			MaxRolls:  s.testRound.MaxRolls,
			BestScore: &s.testBest,
			NewBest:   true,
		}, nil).
		Times(1)
}

func (s *AnimationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Scheduler: s.scheduler})
	s.Equal(ErrNilRoundService, err)

	_, err = New(&Config{RoundService: s.mockRoundService})
	s.Equal(ErrNilScheduler, err)

	_, err = New(&Config{RoundService: s.mockRoundService, Scheduler: s.scheduler, Steps: -1})
	s.Equal(ErrInvalidSteps, err)

	_, err = New(&Config{RoundService: s.mockRoundService, Scheduler: s.scheduler, Delay: -time.Second})
	s.Equal(ErrInvalidDelay, err)
}

func (s *AnimationServiceTestSuite) TestPlay_NilInput() {
	output, err := s.animationService.Play(s.ctx, nil)
	s.Equal(ErrNilInput, err)
	s.Nil(output)
}

func (s *AnimationServiceTestSuite) TestPlay_HappyPath() {
	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), &round.RollFrameInput{Epoch: s.testEpoch}).
		Return(s.testFrame, nil).
		Times(DefaultSteps)
	s.expectCommit(s.testEpoch)

	output, err := s.animationService.Play(s.ctx, s.playInput)

	s.Require().NoError(err)
	s.Equal(models.StatusOK, output.Status)
	s.Equal(s.testEpoch, output.Epoch)
	s.True(s.animationService.Active())
	s.Len(s.frames, 1, "first frame is shown immediately")
	s.Equal(1, s.scheduler.Pending())

	// nine more frames, then the commit
	s.Equal(DefaultSteps, s.scheduler.RunAll())

	s.False(s.animationService.Active())
	s.Require().Len(s.frames, DefaultSteps)
	for i, frame := range s.frames {
		s.Equal(i, frame.Step)
		s.Equal(s.testFrame.Values, frame.Values)
	}
	s.Require().Len(s.results, 1)
	s.Equal(models.OutcomeWon, s.results[0].Outcome)
	s.Equal(models.StatusOK, s.results[0].Status)
	s.True(s.results[0].NewBest)
	s.Equal(s.testBest, *s.results[0].BestScore)
	s.Equal(s.testTime.Add(DefaultSteps*DefaultDelay), s.scheduler.Now())
}

func (s *AnimationServiceTestSuite) TestPlay_RejectedByRound() {
	s.expectStart(models.StatusNoRollsLeft, s.testEpoch)

	output, err := s.animationService.Play(s.ctx, s.playInput)

	s.Require().NoError(err)
	s.Equal(models.StatusNoRollsLeft, output.Status)
	s.False(s.animationService.Active())
	s.Equal(0, s.scheduler.Pending())
	s.Empty(s.frames)
}

func (s *AnimationServiceTestSuite) TestPlay_StartRollError() {
	expectedError := errors.New("start failed")
	s.mockRoundService.EXPECT().
		StartRoll(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	output, err := s.animationService.Play(s.ctx, s.playInput)

	s.Require().Error(err)
	s.ErrorIs(err, expectedError)
	s.Nil(output)
	s.False(s.animationService.Active())
}

func (s *AnimationServiceTestSuite) TestPlay_SecondPlayWhileActiveIsRejected() {
	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), gomock.Any()).
		Return(s.testFrame, nil).
		Times(DefaultSteps)
	s.expectCommit(s.testEpoch)
	s.mockRoundService.EXPECT().
		GetRound(gomock.Any(), &round.GetRoundInput{}).
		Return(&round.GetRoundOutput{Round: s.testRound}, nil)

	_, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.scheduler.Step()

	second, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.Equal(models.StatusAnimating, second.Status)

	s.scheduler.RunAll()
	s.Len(s.results, 1)
}

func (s *AnimationServiceTestSuite) TestPlay_ResetMidAnimationSkipsCommit() {
	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), gomock.Any()).
		Return(s.testFrame, nil).
		Times(3)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), gomock.Any()).
		Return(&round.RollFrameOutput{Status: models.StatusStale}, nil)

	_, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.scheduler.RunAll()

	s.Len(s.frames, 3)
	s.Empty(s.results)
	s.False(s.animationService.Active())
}

func (s *AnimationServiceTestSuite) TestPlay_StaleCommitSkipsEvaluate() {
	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), gomock.Any()).
		Return(s.testFrame, nil).
		Times(DefaultSteps)
	s.mockRoundService.EXPECT().
		CommitRoll(gomock.Any(), gomock.Any()).
		Return(&round.CommitRollOutput{Status: models.StatusStale}, nil)

	_, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.scheduler.RunAll()

	s.Empty(s.results)
	s.False(s.animationService.Active())
}

func (s *AnimationServiceTestSuite) TestPlay_AfterResetAbandonsOldAnimation() {
	nextEpoch := s.testEpoch + 1
	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), &round.RollFrameInput{Epoch: s.testEpoch}).
		Return(s.testFrame, nil).
		Times(1)
	s.mockRoundService.EXPECT().
		GetRound(gomock.Any(), gomock.Any()).
		Return(&round.GetRoundOutput{Round: models.Round{Epoch: nextEpoch}}, nil)
	s.expectStart(models.StatusOK, nextEpoch)
	s.mockRoundService.EXPECT().
		RollFrame(gomock.Any(), &round.RollFrameInput{Epoch: nextEpoch}).
		Return(s.testFrame, nil).
		Times(DefaultSteps)
	s.expectCommit(nextEpoch)

	_, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)

	// the round was reset before the second frame fired
	output, err := s.animationService.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.Equal(models.StatusOK, output.Status)
	s.Equal(nextEpoch, output.Epoch)

	s.scheduler.RunAll()
	s.Len(s.frames, 1+DefaultSteps)
	s.Len(s.results, 1)
}

func (s *AnimationServiceTestSuite) TestPlay_SchedulesConfiguredDelay() {
	mockScheduler := clockMocks.NewMockScheduler(s.mockCtrl)
	svc, err := New(&Config{
		RoundService: s.mockRoundService,
		Scheduler:    mockScheduler,
		Steps:        4,
		Delay:        250 * time.Millisecond,
	})
	s.Require().NoError(err)

	s.expectStart(models.StatusOK, s.testEpoch)
	s.mockRoundService.EXPECT().RollFrame(gomock.Any(), gomock.Any()).Return(s.testFrame, nil)
	mockScheduler.EXPECT().After(250*time.Millisecond, gomock.Any()).Times(1)

	output, err := svc.Play(s.ctx, s.playInput)

	s.Require().NoError(err)
	s.Equal(models.StatusOK, output.Status)
	s.Len(s.frames, 1)
}

func (s *AnimationServiceTestSuite) TestPlay_WithRoundEngine() {
	roundService, err := round.New(&round.Config{
		DiceRoller:    dice.New(&dice.Config{Seed: 11}),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	svc, err := New(&Config{RoundService: roundService, Scheduler: s.scheduler})
	s.Require().NoError(err)

	_, err = svc.Play(s.ctx, s.playInput)
	s.Require().NoError(err)
	s.scheduler.RunAll()
	s.Require().Len(s.results, 1)
	s.Equal(1, s.results[0].Round.RollCount)

	hold, err := roundService.ToggleHold(s.ctx, &round.ToggleHoldInput{Index: 0})
	s.Require().NoError(err)
	s.Require().Equal(models.StatusOK, hold.Status)
	held := s.results[0].Round.Dice[0].Value

	_, err = svc.Play(s.ctx, s.playInput)
	s.Require().NoError(err)

	// holds are rejected, not queued, while the dice roll
	blocked, err := roundService.ToggleHold(s.ctx, &round.ToggleHoldInput{Index: 1})
	s.Require().NoError(err)
	s.Equal(models.StatusAnimating, blocked.Status)

	s.scheduler.RunAll()
	s.Require().Len(s.results, 2)
	s.Equal(2, s.results[1].Round.RollCount)
	s.Equal(held, s.results[1].Round.Dice[0].Value)
	s.False(s.results[1].Round.Dice[1].Held)
	for _, frame := range s.frames[DefaultSteps:] {
		s.True(frame.Held[0])
		s.Equal(held, frame.Values[0])
	}
}
