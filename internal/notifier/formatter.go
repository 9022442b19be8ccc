package notifier

import (
	"fmt"
	"strings"
	"time"

	"restockwatch/internal/models"
	"restockwatch/internal/urlhandler"
)

// FormatNewProductsMessage builds the alert payload for newly spotted
// products on a page. At most maxFields product detail blocks are included;
// when the change count exceeds the cap a single "+ N more" line is appended
// to the description.
func FormatNewProductsMessage(pageURL string, newProducts []models.ProductRecord, diffSummary string, maxFields int, username string, now time.Time) models.DiscordMessagePayload {
	site := urlhandler.SiteDisplayName(pageURL)

	description := fmt.Sprintf("**%d** change(s) detected on [%s](%s)", len(newProducts), site, pageURL)
	if diffSummary != "" {
		description += "\n```diff\n" + diffSummary + "\n```"
	}

	builder := NewDiscordEmbedBuilder().
		WithTitle(fmt.Sprintf("🔔 New products on %s", site)).
		WithURL(pageURL).
		WithColor(ChangeEmbedColor).
		WithTimestamp(now).
		WithFooter(FooterText)

	shown := newProducts
	if len(shown) > maxFields {
		shown = shown[:maxFields]
	}
	for _, p := range shown {
		builder.AddField(p.Title, formatProductDetails(p), false)
	}
	if omitted := len(newProducts) - len(shown); omitted > 0 {
		description += fmt.Sprintf("\n+ %d more", omitted)
	}
	builder.WithDescription(description)

	return models.DiscordMessagePayload{
		Username: username,
		Embeds:   []models.DiscordEmbed{builder.Build()},
	}
}

func formatProductDetails(p models.ProductRecord) string {
	var lines []string
	if p.Price != "" {
		lines = append(lines, "**Price:** "+p.Price)
	}
	if p.Availability != "" {
		lines = append(lines, "**Availability:** "+p.Availability)
	}
	if p.Link != "" {
		lines = append(lines, p.Link)
	}
	if len(lines) == 0 {
		return "—"
	}
	return strings.Join(lines, "\n")
}

// FormatStartupMessage builds the informational payload sent once at startup
// listing the monitored pages.
func FormatStartupMessage(pageURLs []string, username string, now time.Time) models.DiscordMessagePayload {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Monitoring **%d** page(s):\n", len(pageURLs)))
	for _, u := range pageURLs {
		sb.WriteString("• " + u + "\n")
	}

	embed := NewDiscordEmbedBuilder().
		WithTitle("👁️ Page monitoring started").
		WithDescription(strings.TrimRight(sb.String(), "\n")).
		WithColor(StartupEmbedColor).
		WithTimestamp(now).
		WithFooter(FooterText).
		Build()

	return models.DiscordMessagePayload{
		Username: username,
		Embeds:   []models.DiscordEmbed{embed},
	}
}
