package cli

var (
	verbose    bool
	configPath string

	// for run command
	devicePattern string
	scale         float64
	commitDelay   float64
	backend       string
	runAsDaemon   bool
	listenAddr    string

	// for config init command
	forceInit bool
)
