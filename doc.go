// Package clustergo provides K-Means clustering over dense tabular data.
//
// A dataset is a matrix.Dense with one sample per column and one feature per
// row. The engine runs Lloyd's algorithm: centroids are seeded by an
// Initializer, then assignment and update rounds alternate until the label
// assignment is stable.
//
// # Quick Start
//
//	data, _ := matrix.NewDenseFromColumns([][]float64{
//	    {0, 0}, {0, 1}, {10, 0}, {10, 1},
//	})
//
//	km := clustergo.New(clustergo.WithSeed(42))
//	if err := km.Fit(context.Background(), data, 2); err != nil {
//	    log.Fatal(err)
//	}
//
//	labels, _ := km.Labels()
//	centroids, _ := km.Centroids()
//
// # Seeding Strategies
//
//   - KMeansPP (default): k-means++ seeding, samples drawn with probability
//     proportional to squared distance from already-chosen centroids
//   - Random: uniform draws within the dataset's per-feature bounding box
//   - Manual{Centroids}: caller-supplied centroid matrix
//
// Fits are reproducible when an explicit seed is injected:
//
//	km := clustergo.New(clustergo.WithSeed(7))
//
// # Persistence
//
// A fitted model can be saved to and loaded from a blobstore.Store:
//
//	store, _ := blobstore.NewLocalStore("./models")
//	_ = km.SaveSnapshot(ctx, store, "model.snap")
//
//	restored := clustergo.New()
//	_ = restored.LoadSnapshot(ctx, store, "model.snap")
//
// Snapshots are self-describing; they record their codec and compression by
// name.
package clustergo
