package tui

type chartExportedMsg struct {
	path string
	err  error
}
