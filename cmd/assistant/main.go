package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/BssMsi/everglow-ai-storefront/internal/config"
	catalogModel "github.com/BssMsi/everglow-ai-storefront/internal/model/catalog"
	chatModel "github.com/BssMsi/everglow-ai-storefront/internal/model/chat"
	themeModel "github.com/BssMsi/everglow-ai-storefront/internal/model/theme"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/agent"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/catalog"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/session"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/theme"
	"github.com/BssMsi/everglow-ai-storefront/internal/service/voice"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	themes := theme.NewManager(theme.WithOnChange(func(sel themeModel.Selection) {
		fmt.Printf("~ theme is now %s/%s\n", sel.Scheme, sel.Font)
	}))

	controller := session.NewController(
		agent.NewClient(cfg.Agent.BaseURL, cfg.Agent.Timeout),
		catalog.NewResolver(cfg.Agent.BaseURL, cfg.Agent.Timeout),
		themes,
		session.WithOnMessage(printMessage),
		session.WithOnProducts(printProducts),
	)

	device := voice.NewFileDevice(cfg.Voice.CaptureFile, cfg.Voice.SampleRate, cfg.Voice.ChunkInterval)
	player := voice.NewFilePlayer(cfg.Voice.PlaybackDir)
	voiceClient := voice.NewClient(cfg.Voice.URL, device, player, controller)
	defer voiceClient.StopListening()

	fmt.Println("Everglow assistant. Type to chat; /voice, /stop, /reset, /quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return
		case line == "/reset":
			controller.Reset()
		case line == "/voice":
			if err := voiceClient.StartListening(ctx); err != nil {
				log.Printf("voice start failed: %v", err)
			}
		case line == "/stop":
			voiceClient.StopListening()
		case strings.HasPrefix(line, "/theme"):
			themes.ApplyHint(strings.TrimSpace(strings.TrimPrefix(line, "/theme")))
		default:
			controller.SubmitUtterance(ctx, line)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("stdin read failed: %v", err)
	}
}

func printMessage(msg chatModel.Message) {
	if msg.Sender == chatModel.SenderUser {
		return
	}
	fmt.Printf("assistant: %s\n", msg.Content)
}

func printProducts(products []catalogModel.Product) {
	fmt.Printf("-- %d product(s) --\n", len(products))
	for _, p := range products {
		fmt.Printf("  [%s] %s (%s) $%.2f\n", p.ID, p.Name, p.Category, p.Price)
	}
}
