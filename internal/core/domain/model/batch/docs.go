// Package batch provides the Batch aggregate: a set of orders imported together from one
// source, stored so it can be reported on later.
package batch
