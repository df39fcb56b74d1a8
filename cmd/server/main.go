// cmd/server/main.go
package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AquaKing123/quartets-server/internal/config"
	"github.com/AquaKing123/quartets-server/internal/server"
)

func main() {
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	srv := server.NewServer()
	srv.Rules.HandSize = uint8(cfg.HandSize)
	srv.Rules.RequestsPerTurn = uint8(cfg.RequestsPerTurn)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.HandleWS)
	mux.HandleFunc("/health", srv.HandleHealth)

	logrus.WithField("addr", cfg.Addr).Info("quartets server listening")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
