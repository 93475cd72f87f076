// Package shortlist narrows the candidate pool for a job using coarse
// vector similarity, producing the ordered entries the scoring stage
// refines. The default retriever scans every stored candidate vector
// exactly; corpus sizes here are tens of thousands, well inside a full
// scan's budget.
package shortlist
