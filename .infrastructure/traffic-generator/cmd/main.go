package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundry_traffic_requests_total",
		Help: "Запросы генератора к леджеру по операции и статусу",
	}, []string{"operation", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laundry_traffic_request_duration_seconds",
		Help:    "Длительность запросов генератора к леджеру",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1},
	}, []string{"operation"})
)

type client struct {
	base string
	http *http.Client
}

type idResponse struct {
	ID uint64 `json:"id"`
}

// call отправляет JSON и декодирует id из ответа, если out не nil.
func (c *client) call(operation, method, path string, body any, out *idResponse) int {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Printf("%s: encode: %v", operation, err)
			return 0
		}
	}

	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		log.Printf("%s: build request: %v", operation, err)
		return 0
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(operation, "error").Inc()
		log.Printf("%s: %v", operation, err)
		return 0
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	if out != nil && resp.StatusCode < http.StatusMultipleChoices {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Printf("%s: decode: %v", operation, err)
		}
	}
	return resp.StatusCode
}

// round - один сценарий клиента прачечной: регистрация, заказ, оплата, опрос.
func (c *client) round(n int) {
	var user idResponse
	if c.call("create_user", http.MethodPost, "/user", map[string]string{"name": fmt.Sprintf("load-%d", n)}, &user) != http.StatusCreated {
		return
	}

	pkg := "regular"
	if rand.IntN(2) == 0 {
		pkg = "express"
	}

	var order idResponse
	orderBody := map[string]any{"weight": 1 + rand.IntN(20), "user_id": user.ID, "package": pkg}
	if c.call("create_order", http.MethodPost, "/order", orderBody, &order) != http.StatusCreated {
		return
	}

	c.call("pay", http.MethodPost, "/order/pay", map[string]uint64{"user_id": user.ID, "order_id": order.ID}, nil)
	c.call("poll_completion", http.MethodPost, fmt.Sprintf("/order/%d/completion", order.ID), nil, nil)
	c.call("get_order", http.MethodGet, fmt.Sprintf("/order/%d", order.ID), nil, nil)
}

func main() {
	target := flag.String("target", "http://localhost:8080", "laundry service base URL")
	interval := flag.Duration("interval", 500*time.Millisecond, "pause between scenario rounds")
	metricsAddr := flag.String("metrics", ":2112", "metrics listen address")
	flag.Parse()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	c := &client{base: *target, http: &http.Client{Timeout: 5 * time.Second}}
	for n := 0; ; n++ {
		c.round(n)
		time.Sleep(*interval)
	}
}
