package bootstrap

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	datasetinadapter "bikeshare/internal/modules/dataset/adapter/in"
	datasetoutadapter "bikeshare/internal/modules/dataset/adapter/out"
	datasetservice "bikeshare/internal/modules/dataset/service"
	datasetusecase "bikeshare/internal/modules/dataset/usecase"
	statsinadapter "bikeshare/internal/modules/stats/adapter/in"
	statsoutadapter "bikeshare/internal/modules/stats/adapter/out"
	statsservice "bikeshare/internal/modules/stats/service"
	statsusecase "bikeshare/internal/modules/stats/usecase"
	"bikeshare/internal/platform/clock"
	"bikeshare/internal/platform/config"
	"bikeshare/internal/platform/id"
	uiapp "bikeshare/internal/ui/app"
)

type App struct {
	DatasetCLI datasetinadapter.CLIHandler
	DatasetTUI datasetinadapter.TUIHandler
	StatsCLI   statsinadapter.CLIHandler

	// Logger carries the session id of this run.
	Logger hclog.Logger

	store *datasetoutadapter.LazySQLiteTripStore
}

// New wires adapters, services and usecases for one run. The trip store is
// opened on first use; Close releases it.
func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}
	logger = logger.With("session", ids.New())

	store := datasetoutadapter.NewLazySQLiteTripStore(cfg.DBPath, clk)
	datasetUC := datasetusecase.NewInteractor(datasetservice.NewDatasetService(
		clk,
		logger,
		datasetoutadapter.NewConfigCatalog(cfg),
		datasetoutadapter.NewCSVTripReader(),
		store,
		cfg.PageSize,
	))
	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(
		clk,
		logger,
		statsoutadapter.NewDatasetTripProvider(datasetUC),
	))

	logger.Debug("application wired", "data_dir", cfg.DataDir, "db", cfg.DBPath, "page_size", cfg.PageSize)
	return &App{
		DatasetCLI: datasetinadapter.NewCLIHandler(datasetUC),
		DatasetTUI: datasetinadapter.NewTUIHandler(datasetUC),
		StatsCLI:   statsinadapter.NewCLIHandler(statsUC),
		Logger:     logger,
		store:      store,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// RunTUI takes over the terminal until the user quits. The app's logger must
// not write to the terminal while the program runs.
func RunTUI(app *App) error {
	if app == nil {
		return errors.New("app is not initialised")
	}
	model := uiapp.NewModel(app.StatsCLI, app.DatasetTUI, app.Logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
