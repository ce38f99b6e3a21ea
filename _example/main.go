package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/blobstore"
	"github.com/hupe1980/clustergo/testutil"
)

func main() {
	ctx := context.Background()

	seed := int64(4711)
	k := 3
	perCluster := 2000

	centers := [][]float64{
		{0, 0},
		{12, 3},
		{-5, 9},
	}

	rng := testutil.NewRNG(seed)
	data := rng.GenerateClusters(centers, perCluster, 0.8)

	fmt.Println("--- Fit ---")
	fmt.Println("Samples:", data.Cols())
	fmt.Println("Features:", data.Rows())
	fmt.Println("Clusters:", k)

	metrics := &clustergo.BasicMetricsCollector{}

	km := clustergo.New(
		clustergo.WithInitializer(clustergo.KMeansPP{}),
		clustergo.WithSeed(seed),
		clustergo.WithParallel(4),
		clustergo.WithMetrics(metrics),
		clustergo.WithLogger(clustergo.NewTextLogger(slog.LevelInfo)),
	)

	start := time.Now()
	if err := km.Fit(ctx, data, k); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Seconds: %.3f\n", time.Since(start).Seconds())
	fmt.Println("Iterations:", km.Iterations())
	fmt.Println("Converged:", km.Converged())
	fmt.Println()

	fmt.Println("--- Clusters ---")
	centroids, err := km.Centroids()
	if err != nil {
		log.Fatal(err)
	}
	for c := 0; c < km.K(); c++ {
		members, err := km.IndicesWithLabel(c)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("cluster %d: centroid (%.2f, %.2f), %d members\n",
			c, centroids.At(0, c), centroids.At(1, c), len(members))
	}

	variance, err := km.MLEVariance(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("MLE variance: %.4f\n\n", variance)

	fmt.Println("--- Predict ---")
	for _, probe := range [][]float64{{1, 1}, {11, 2}, {-4, 8}} {
		cluster, err := km.ClosestCluster(probe)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("(%g, %g) -> cluster %d\n", probe[0], probe[1], cluster)
	}
	fmt.Println()

	fmt.Println("--- Snapshot ---")
	store := blobstore.NewMemoryStore()
	if err := km.SaveSnapshot(ctx, store, "demo.snap"); err != nil {
		log.Fatal(err)
	}

	restored := clustergo.New()
	if err := restored.LoadSnapshot(ctx, store, "demo.snap"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("restored clusters:", restored.K())
	fmt.Printf("fit calls: %d, avg fit: %s\n",
		metrics.FitCount.Load(), time.Duration(metrics.AverageFitNanos()))
}
