package cmd

// runTUI opens the interactive journal, or the login view when there is no
// stored token.
func runTUI() {
	services := loadServices()
	if services == nil {
		return
	}

	if err := deps.RunTUI(services); err != nil {
		fail("Failed to run the terminal UI", err, "")
	}
}
