package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

const deleteBatchSize = 100

// deleteCollection removes every document of a collection in bulk-writer
// batches. Used by the admin cascade delete.
func deleteCollection(ctx context.Context, client *firestore.Client, ref *firestore.CollectionRef) error {
	for {
		iter := ref.Limit(deleteBatchSize).Documents(ctx)
		writer := client.BulkWriter(ctx)

		deleted := 0
		for {
			docSnap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				writer.End()
				return wrapStoreErr(err, "failed to iterate collection for delete",
					goerr.V("collection", ref.Path))
			}
			if _, err := writer.Delete(docSnap.Ref); err != nil {
				iter.Stop()
				writer.End()
				return goerr.Wrap(err, "failed to enqueue delete", goerr.V("doc", docSnap.Ref.Path))
			}
			deleted++
		}
		iter.Stop()
		writer.End()

		if deleted < deleteBatchSize {
			return nil
		}
	}
}
