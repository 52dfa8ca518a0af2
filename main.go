package main

import (
	"fmt"
	"log"
	"os"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/api"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/apps/cli"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/services/logger"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/storage/credstore"
)

func main() {
	std := log.New(os.Stderr, "", log.LstdFlags)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewConsoleLogger(std, conf)
	}

	tokens := credstore.NewFileStore(conf.CredentialsFile)
	store := state.NewStore()
	gateway := api.NewClient(conf, tokens, logger)
	sess := session.NewService(gateway, tokens, logger)

	// a token the server rejects ends the session everywhere
	gateway.OnUnauthorized(func() {
		sess.Logout()
		store.Reset()
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	app := cli.NewApp(conf, logger, gateway, sess, store)
	if err := app.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
