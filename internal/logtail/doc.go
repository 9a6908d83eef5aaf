// Package logtail reads the tail of the storefront's JSON log file for the
// activity view.
//
// Read uses a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the file grows. Missing files read as empty; the log file
// is created lazily by the first write.
//
// Parse decodes one zap JSON line into an Entry. Reserved keys (ts, level,
// msg, caller) become struct fields and everything else becomes a sorted
// Field list:
//
//	{"level":"warn","ts":"2025-10-08T21:01:05.000Z","msg":"unparseable price; counting as zero","item_id":"9f0c","price_text":"£abc"}
//
// Lines that are not JSON are kept verbatim as the message so nothing the
// user wrote into the file disappears from view.
package logtail
