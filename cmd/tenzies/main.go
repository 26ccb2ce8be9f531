package main

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/tenzies/internal/assets"
	"github.com/KirkDiggler/tenzies/internal/audio"
	"github.com/KirkDiggler/tenzies/internal/common/uuid"
	"github.com/KirkDiggler/tenzies/internal/config"
	"github.com/KirkDiggler/tenzies/internal/dice"
	"github.com/KirkDiggler/tenzies/internal/handlers/tui"
	"github.com/KirkDiggler/tenzies/internal/services/animation"
	gameService "github.com/KirkDiggler/tenzies/internal/services/game"
	"github.com/KirkDiggler/tenzies/internal/services/messaging"
	"github.com/KirkDiggler/tenzies/internal/services/round"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to the table, so logs go to a file
	logFile, err := tea.LogToFile(cfg.LogFile, "tenzies")
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})

	// Initialize round engine
	roundSvc, err := round.New(&round.Config{
		MaxRolls:      cfg.MaxRolls,
		DiceRoller:    diceRoller,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create round service: %v", err)
	}

	// Animation steps run on the bubbletea event loop
	scheduler := tui.NewScheduler()
	animationSvc, err := animation.New(&animation.Config{
		Steps:        cfg.AnimationSteps,
		Delay:        cfg.AnimationDelay,
		RoundService: roundSvc,
		Scheduler:    scheduler,
	})
	if err != nil {
		log.Fatalf("Failed to create animation service: %v", err)
	}

	tone, err := messaging.ParseTone(cfg.MessageTone)
	if err != nil {
		log.Fatalf("Failed to parse message tone: %v", err)
	}
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultTone: tone,
		Seed:        cfg.Seed,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		player = audio.NewBell(os.Stderr)
	}

	surface := tui.NewSurface()
	gameSvc, err := gameService.New(&gameService.Config{
		RoundService:     roundSvc,
		AnimationService: animationSvc,
		MessagingService: messagingSvc,
		Presenter:        surface,
		AudioPlayer:      player,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	app, err := tui.New(&tui.Config{
		GameService: gameSvc,
		Surface:     surface,
		Scheduler:   scheduler,
		Faces:       assets.Resolve(cfg.FacesFile),
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	current, err := roundSvc.GetRound(context.Background(), &round.GetRoundInput{})
	if err != nil {
		log.Fatalf("Failed to get round: %v", err)
	}
	log.Printf("Round %s started with %d rolls", current.Round.ID, current.Round.MaxRolls)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
	log.Println("Table closed")
}
