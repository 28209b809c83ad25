package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"mongodm/src/document"
	"mongodm/src/fields"
	"mongodm/src/schema"
	"mongodm/src/settings"
	"mongodm/src/store"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("mongodm - declarative document mapping demo")
	log.Println("\nUsage:")
	log.Println("  mongodm [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()
}

func main() {
	args := &settings.Arguments{}

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.LogFile, "logfile", "", "File to write log output to (default: stdout)")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", true, "Enable debug mode")
	flag.Usage = printUsage

	// Parse the command line
	flag.Parse()

	// Print the arguments if in verbose mode
	if args.Verbose {
		log.Println("mongodm starting with options:")
		log.Printf("  Log File: %s\n", args.LogFile)
		log.Printf("  Debug: %v\n", args.Debug)
	}

	logger, err := initLogger(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Declare the User model: one type-checked text field and one
	// free-form field carrying a default.
	userSchema, err := schema.Register(schema.Definition{
		Name: "User",
		Attrs: map[string]interface{}{
			"name":       fields.String("user_name", fields.Options{TypeCheck: true}),
			"test_field": fields.Common("test", fields.Options{Default: fields.Literal(-9999)}),
		},
	}, sugar)
	if err != nil {
		sugar.Fatalf("failed to register User model: %v", err)
	}

	st := store.NewLogStore(sugar, args)
	user := document.New(userSchema, st, sugar)

	// A mistyped write is rejected before anything is stored.
	if err := user.Set("name", 12345); err != nil {
		sugar.Infof("rejected write: %v", err)
	}

	if err := user.Set("name", "Jett"); err != nil {
		sugar.Fatalf("failed to set name: %v", err)
	}
	sugar.Infof("dirty attributes before save: %v", user.Dirty())

	// No identity yet, so the first save takes the insert path.
	if err := user.Save(); err != nil {
		sugar.Fatalf("save failed: %v", err)
	}
	sugar.Infof("saved user: %s", user)

	// Subsequent saves carry only the modified attributes.
	if err := user.Set("name", "Jett Hu"); err != nil {
		sugar.Fatalf("failed to update name: %v", err)
	}
	if err := user.Save(); err != nil {
		sugar.Fatalf("update save failed: %v", err)
	}
	sugar.Infof("updated user: %s", user)
}

func initLogger(args *settings.Arguments) (*zap.Logger, error) {
	if args.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		if args.LogFile != "" {
			z.OutputPaths = []string{args.LogFile}
		}
		return z.Build()
	}
	// Production configuration
	return zap.NewProduction()
}
