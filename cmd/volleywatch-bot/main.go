// The volleywatch-bot binary answers liveness queries over Telegram.
//
// It long-polls the Bot API and replies to /online with the current UTC
// time. It runs independently of the scrape cycle and shares no mutable
// state with it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmorosoli/volleywatch/internal/telegram"
)

var (
	botToken     = flag.String("bot-token", os.Getenv("TELEGRAM_BOT_TOKEN"), "Telegram bot token (or env: TELEGRAM_BOT_TOKEN)")
	loopDuration = flag.Duration("loop-duration", 5*time.Hour+50*time.Minute, "Maximum polling duration")
	pollTimeout  = flag.Int("poll-timeout", 30, "Long-poll timeout in seconds")
)

type update struct {
	UpdateID int      `json:"update_id"`
	Message  *message `json:"message,omitempty"`
}

type message struct {
	Chat chat   `json:"chat"`
	Text string `json:"text"`
}

type chat struct {
	ID int64 `json:"id"`
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if *botToken == "" {
		fmt.Fprintf(os.Stderr, "Error: bot token is required (use --bot-token or TELEGRAM_BOT_TOKEN env var)\n")
		os.Exit(1)
	}

	fmt.Printf("Polling for liveness queries (max %s)\n", *loopDuration)

	deadline := time.Now().Add(*loopDuration)
	offset := 0
	for time.Now().Before(deadline) {
		updates, err := getUpdates(*botToken, offset, *pollTimeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error polling updates: %v\n", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil {
				continue
			}
			handleMessage(*botToken, u.Message)
		}
	}
}

// handleMessage answers the /online liveness command and ignores the rest.
func handleMessage(token string, m *message) {
	cmd := strings.TrimSpace(m.Text)
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	if cmd != "/online" {
		return
	}

	chatID := strconv.FormatInt(m.Chat.ID, 10)
	client, err := telegram.NewClient(token, chatID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client for chat %s: %v\n", chatID, err)
		return
	}

	reply := "✅ volleywatch online - " + time.Now().UTC().Format(time.RFC3339)
	if err := client.SendMessage(reply); err != nil {
		fmt.Fprintf(os.Stderr, "Error replying to chat %s: %v\n", chatID, err)
	}
}

// getUpdates long-polls the Bot API for new messages.
func getUpdates(token string, offset, timeoutSeconds int) ([]update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?offset=%d&timeout=%d",
		token, offset, timeoutSeconds)

	client := &http.Client{Timeout: time.Duration(timeoutSeconds+10) * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("polling updates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK     bool     `json:"ok"`
		Result []update `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return nil, fmt.Errorf("telegram API returned not ok")
	}

	return result.Result, nil
}
