package messages

// User-facing messages. These are sent as ephemeral interaction responses,
// so the wording here is what members of a guild actually see.
const (
	// ErrUserErrorProcessing is the generic failure message for a command
	// that could not be processed.
	ErrUserErrorProcessing = `エラーが発生しました。もう一度お試しください。`

	// ErrCategoryNotFound is sent when a ticket is requested for a
	// category that no longer exists.
	ErrCategoryNotFound = `カテゴリーが見つかりません！`

	// ErrTicketAlreadyOpen is sent when a user with an open ticket tries
	// to open another one.
	ErrTicketAlreadyOpen = `既にチケットが開かれています！`

	// ErrPermissionDenied is sent when a user attempts a staff-only
	// action.
	ErrPermissionDenied = `この操作を行う権限がありません。`

	// ErrNoButtonsConfigured is sent when a panel is published for a
	// guild with no ticket buttons configured.
	ErrNoButtonsConfigured = `チケットのボタンが設定されていません！`

	// ErrNoSnapshots is sent when a load is requested but no snapshots
	// exist.
	ErrNoSnapshots = `保存された設定ファイルが見つかりません。`

	// ErrSnapshotMissing is sent when the selected snapshot no longer
	// exists on disk.
	ErrSnapshotMissing = `選択されたファイルが見つかりません。`

	// TicketCreatedTitle is the title of the ephemeral confirmation shown
	// to the requester.
	TicketCreatedTitle = `🎫 チケットが作成されました。`

	// TicketCreatedDescription is the description of the ephemeral
	// confirmation shown to the requester.
	TicketCreatedDescription = `下のボタンをクリックしてアクセスしてください。`

	// VisitTicketLabel is the label of the link button pointing at the new
	// ticket channel.
	VisitTicketLabel = `チケットに行く`

	// TicketPinned is sent after a ticket channel has been pinned.
	TicketPinned = `チケットがピンされました。`

	// PinTicketLabel is the label of the pin button.
	PinTicketLabel = `Pin チケット`

	// CloseTicketLabel is the label of the close button.
	CloseTicketLabel = `チケットを閉じる`

	// ClosePromptTitle is the title of the close confirmation prompt.
	ClosePromptTitle = `チケットを閉じますか？`

	// ClosePromptDescription is the description of the close confirmation
	// prompt.
	ClosePromptDescription = `本当にこのチケットを閉じますか？`

	// CloseConfirmLabel is the label of the confirmation "yes" button.
	CloseConfirmLabel = `はい`

	// CloseCancelLabel is the label of the confirmation "no" button.
	CloseCancelLabel = `いいえ`

	// CloseCancelled is sent after a close prompt is cancelled.
	CloseCancelled = `キャンセルしました。`

	// TicketClosedTitle is the title of the close notification DM.
	TicketClosedTitle = `📄チケットが閉じました`

	// ReopenTicketLabel is the label of the "create another ticket" link
	// button attached to the close notification.
	ReopenTicketLabel = `チケットをもう一度作成する`

	// PanelPublished is sent after the ticket panel has been published.
	PanelPublished = `チケットパネルを作成しました。`

	// PanelMenuPlaceholder is the placeholder of the ticket selection
	// menu.
	PanelMenuPlaceholder = `チケットを開くカテゴリーを選択してください...`

	// CategoryMenuPlaceholder is the placeholder of the category selection
	// menu shown during button configuration.
	CategoryMenuPlaceholder = `カテゴリーを選択してください...`

	// CategoryMenuPrompt asks the operator to pick a category for a new
	// button.
	CategoryMenuPrompt = `カテゴリーを選択してください：`

	// SnapshotMenuPlaceholder is the placeholder of the snapshot selection
	// menu.
	SnapshotMenuPlaceholder = `ロードする保存ファイルを選択してください...`

	// SnapshotMenuPrompt asks the operator to pick a snapshot to load.
	SnapshotMenuPrompt = `ロードするファイルを選んでください：`

	// PanelTextSavedFmt is sent after the panel title and description have
	// been configured. The verb takes the configured title.
	PanelTextSavedFmt = `チケットパネルのタイトルを '%s' に、説明を設定しました。`

	// ButtonAddedFmt is sent after a ticket button has been configured. The
	// verbs take the button name, category ID, emoji, staff role and viewer
	// role.
	ButtonAddedFmt = `ボタン '%s' (カテゴリー: %s, 絵文字: %s) とスタッフロール '%s'、閲覧可能ロール '%s' を追加しました。`

	// SnapshotSavedFmt is sent after the settings have been written to a
	// snapshot file. The verb takes the file name.
	SnapshotSavedFmt = `設定内容を保存しました。 (File: %s)`

	// SnapshotLoadedFmt is sent after a snapshot has been loaded. The verb
	// takes the file name.
	SnapshotLoadedFmt = `%s から設定をロードしました。`

	// OpenEmbedSaved is sent after the open-ticket embed has been
	// configured.
	OpenEmbedSaved = `チケットのEmbed設定を保存しました。`

	// DMSettingsSaved is sent after the close DM message and link have
	// been configured.
	DMSettingsSaved = `DMメッセージとチケットリンクを設定しました。`

	// PanelVisualsSaved is sent after the panel image and color have been
	// configured.
	PanelVisualsSaved = `チケットパネルの設定を保存しました。`

	// EmbedImagesSaved is sent after the open/close embed images have been
	// configured.
	EmbedImagesSaved = `チケットのembed画像設定を保存しました。`

	// DeveloperInfoSaved is sent after the panel footer has been
	// configured.
	DeveloperInfoSaved = `チケットパネルの開発者情報を設定しました。`

	// CreatorFieldName is the name of the creator field in the close
	// notification DM.
	CreatorFieldName = `作成者`

	// ClosedAtFieldName is the name of the closure timestamp field in the
	// close notification DM.
	ClosedAtFieldName = `作成日時`
)
