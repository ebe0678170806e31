package config

const (
	// AppName is the name of the application.
	AppName = "madoguchi"

	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `BOT_TOKEN`

	// EnvApplicationId is the environment variable for the application ID.
	EnvApplicationId = `APPLICATION_ID`

	// EnvSnapshotDir is the environment variable for the snapshot
	// directory.
	EnvSnapshotDir = `SNAPSHOT_DIR`

	// EnvMonitoringPort is the environment variable for the monitoring
	// port.
	EnvMonitoringPort = `MONITORING_PORT`
)

var (
	// BotToken is the token for the bot.
	BotToken string

	// ApplicationId is the ID of the application.
	ApplicationId string

	// SnapshotDir is the directory that configuration snapshots are
	// saved in.
	SnapshotDir string

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string
)
