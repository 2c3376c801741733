// Package domain contains the value types shared by every stage of the
// pricing pipeline: cargo and transport profiles, the ingested request and
// the delivery option (quote) record. The types carry no infrastructure
// concerns so ingestion, pricing and export can depend on them freely.
package domain
