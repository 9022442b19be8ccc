package notifier

// Embed color markers.
const (
	ChangeEmbedColor  = 0x2ECC71 // green, new products spotted
	StartupEmbedColor = 0x3498DB // blue, informational
)

// FooterText appears at the bottom of every embed.
const FooterText = "RestockWatch"
