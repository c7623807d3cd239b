package calc

import "github.com/sirupsen/logrus"

// Process applies fn to each item in order and collects the successful results.
// Items for which fn fails are logged and skipped.
func Process[T, R any](items []T, fn func(T) (R, error), log logrus.FieldLogger) []R {
	results := make([]R, 0, len(items))
	for i, item := range items {
		r, err := fn(item)
		if err != nil {
			if log != nil {
				log.WithFields(logrus.Fields{
					"index": i,
					"item":  item,
				}).WithError(err).Warn("Error processing element")
			}
			continue
		}
		results = append(results, r)
	}
	return results
}
