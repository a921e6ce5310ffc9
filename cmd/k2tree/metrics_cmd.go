package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/postfix/k2trees/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var defaultRegisterer = prometheus.NewRegistry()
var cliMetrics = metrics.New(defaultRegisterer)

var metricsAddr string

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "serve Prometheus metrics for this process over HTTP",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(defaultRegisterer, promhttp.HandlerOpts{}))
		fmt.Printf("serving metrics on %s/metrics\n", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	metricsCmd.Flags().StringVar(&metricsAddr, "addr", ":9090", "address to serve /metrics on")
}
