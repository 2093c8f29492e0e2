// Package zapbridge adapts a ringlog logger to zapcore.Core, allowing
// ringlog to serve as the output backend of a zap logger.
//
// Entries are rendered through a zapcore console encoder and the
// resulting line is forwarded through the transport. The entry's own
// timestamp and level are omitted from the encoded line since the
// transport stamps both.
package zapbridge
