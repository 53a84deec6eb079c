package cmd

import (
	"os"
	"path/filepath"

	globalConfig "github.com/calderonh/spamsense/core/config"
	domainCache "github.com/calderonh/spamsense/domains/cache"
	domainHealth "github.com/calderonh/spamsense/domains/health"
	domainPredict "github.com/calderonh/spamsense/domains/predict"
	"github.com/calderonh/spamsense/infrastructure/artifacts"
	"github.com/calderonh/spamsense/infrastructure/model"
	"github.com/calderonh/spamsense/pkg/predcache"
	"github.com/calderonh/spamsense/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg *globalConfig.Config

	// Cache
	predictionCache *predcache.Store

	// Usecase
	predictUsecase domainPredict.IPredictUsecase
	cacheUsecase   domainCache.ICacheUsecase
	healthUsecase  domainHealth.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Short: "SMS spam classification API",
	Long: `HTTP API wrapping a pre-trained SMS spam classifier. Model artifacts
are fetched from MODEL_URL at startup unless already present in MODEL_DIR,
and predictions can be served from an in-memory TTL cache.`,
}

func init() {
	var err error
	cfg, err = globalConfig.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig applies environment overrides through viper
func initEnvConfig() {
	viper.AutomaticEnv()

	if envPort := viper.GetString("app_port"); envPort != "" {
		cfg.App.Port = envPort
	}
	if viper.IsSet("app_debug") {
		cfg.App.Debug = viper.GetBool("app_debug")
	}
	if envBasePath := viper.GetString("app_base_path"); envBasePath != "" {
		cfg.App.BasePath = envBasePath
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&cfg.App.Port,
		"port", "p",
		cfg.App.Port,
		"change port number with --port <number> | example: --port=8081",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.App.Debug,
		"debug", "d",
		cfg.App.Debug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Model.Dir,
		"model-dir", "",
		cfg.Model.Dir,
		`directory holding the model artifacts --model-dir <string> | example: --model-dir="storages/model-files"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&cfg.Model.SourceURL,
		"model-url", "",
		cfg.Model.SourceURL,
		`remote model-release.tar.gz to fetch when artifacts are absent --model-url <string>`,
	)
	rootCmd.PersistentFlags().IntVarP(
		&cfg.Cache.MaxSize,
		"cache-max-size", "",
		cfg.Cache.MaxSize,
		"maximum number of cached predictions --cache-max-size <number>",
	)
	rootCmd.PersistentFlags().DurationVarP(
		&cfg.Cache.TTL,
		"cache-ttl", "",
		cfg.Cache.TTL,
		"time-to-live for cached predictions --cache-ttl <duration> | example: --cache-ttl=1h",
	)
}

func initApp() {
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Model dir may have moved via flag; recompute artifact paths.
	cfg.Model.ModelFile = filepath.Join(cfg.Model.Dir, "model.json")
	cfg.Model.PreprocessorFile = filepath.Join(cfg.Model.Dir, "preprocessor.json")

	// The provisioner must finish before anything else: a classifier without
	// its artifacts cannot safely answer requests.
	provisioner := artifacts.New(cfg.Model.Dir, cfg.Model.ModelFile, cfg.Model.PreprocessorFile, cfg.Model.SourceURL)
	if err := provisioner.Ensure(); err != nil {
		logrus.Fatalf("Failed to provision model artifacts: %v", err)
	}

	preprocessor, err := model.LoadPreprocessor(cfg.Model.PreprocessorFile)
	if err != nil {
		logrus.Fatalf("Failed to load preprocessor: %v", err)
	}
	classifier, err := model.LoadClassifier(cfg.Model.ModelFile)
	if err != nil {
		logrus.Fatalf("Failed to load classifier: %v", err)
	}
	logrus.Infof("[MODEL] Loaded %s classifier from %s", classifier.Name(), cfg.Model.Dir)

	predictionCache = predcache.New(cfg.Cache.MaxSize, cfg.Cache.TTL)

	predictUsecase = usecase.NewPredictService(preprocessor, classifier, predictionCache)
	cacheUsecase = usecase.NewCacheService(predictionCache)
	healthUsecase = usecase.NewHealthService(classifier, predictionCache, cfg.Model.ModelFile, cfg.Model.PreprocessorFile)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
