/* notifier.go
 * Contains the Discord notifier that announces completed settlement passes
 * to the group channel. Requires a discord bot token and a channel id.
 */

package bot

import (
	"fmt"
	"strings"

	"cfb-pickem/api/api"
	"cfb-pickem/api/store"

	"github.com/bwmarrin/discordgo"
)

// How many leaderboard rows make it into an announcement.
const leaderboardLimit = 10

// Notifier posts settlement summaries to a Discord channel.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

var _ api.Notifier = (*Notifier)(nil)

// NewNotifier creates a session and verifies it can authenticate.
func NewNotifier(botToken string, channelID string) (*Notifier, error) {
	if botToken == "" || channelID == "" {
		return nil, fmt.Errorf("bot token and channel id are required")
	}
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	if err := discord.Open(); err != nil {
		return nil, fmt.Errorf("failed to open discord session: %w", err)
	}
	return &Notifier{session: discord, channelID: channelID}, nil
}

// Close shuts down the underlying session.
func (n *Notifier) Close() error {
	return n.session.Close()
}

// AnnounceSettlement posts the pass summary and the current standings.
func (n *Notifier) AnnounceSettlement(summary api.SettlementSummary, leaderboard []store.LeaderboardEntry) error {
	_, err := n.session.ChannelMessageSend(n.channelID, formatAnnouncement(summary, leaderboard))
	return err
}

func formatAnnouncement(summary api.SettlementSummary, leaderboard []store.LeaderboardEntry) string {
	var sb strings.Builder
	sb.WriteString("**Scores updated!**\n")
	sb.WriteString(fmt.Sprintf("%d final games: %d wins, %d losses, %d pushes",
		summary.FinalGames, summary.Wins, summary.Losses, summary.Pushes))
	if summary.Pending > 0 {
		sb.WriteString(fmt.Sprintf(" (%d picks still pending)", summary.Pending))
	}
	sb.WriteString("\n\n**Standings**\n")
	for i, entry := range leaderboard {
		if i >= leaderboardLimit {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(leaderboard)-leaderboardLimit))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry.String()))
	}
	return sb.String()
}
