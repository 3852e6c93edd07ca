// Package translator converts natural-language questions about system
// metrics into PromQL expressions.
//
// # Translation Model
//
// Translation is a first-match scan over an ordered table of regular
// expressions. Each row pairs a pattern with a fixed PromQL template;
// the input is lowercased and trimmed, then each pattern is searched
// anywhere in the text. The first row that matches wins and its
// template is returned verbatim.
//
// Table order is therefore the precedence mechanism. Broad rows placed
// early shadow narrower rows placed later: "cpu usage" precedes
// "average cpu", so "average cpu usage" resolves to the plain CPU rate
// rather than the aggregate. Callers extending the table via
// NewWithTable should put specific patterns before general ones.
//
// # Fallback
//
// Translation never fails. Input that matches no row falls back to
// DefaultQuery ("up"), a liveness expression every Prometheus server
// can answer. The boolean returned by Translate distinguishes a table
// match from the fallback, which matters because "up" is also the
// legitimate template for availability questions:
//
//	promql, matched := tr.Translate("is the service up and available?")
//	// promql == "up", matched == true  (availability row)
//
//	promql, matched = tr.Translate("tell me a joke")
//	// promql == "up", matched == false (fallback)
//
// # Construction-Time Validation
//
// NewWithTable compiles every pattern and parses every template with
// the Prometheus PromQL parser. A row that does not compile or does
// not parse fails construction with an invalid-classified error, so a
// misconfigured table is caught at startup instead of on the first
// request that happens to hit the bad row.
//
// # Basic Usage
//
//	tr, err := translator.New(logger)
//	if err != nil {
//		return err
//	}
//	promql, matched := tr.Translate("what is the average response time?")
//	// promql == `avg(rate(http_request_duration_seconds[5m]))`
//
// Translators are immutable after construction and safe for concurrent
// use.
package translator
