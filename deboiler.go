// Package deboiler discovers and removes HTML boilerplate (navigation
// bars, headers, footers, sidebars, cookie banners) shared across the
// pages of a single web domain.
//
// Given a Dataset of (url, raw_html) pairs crawled from one domain, Fit
// walks adjacent pairs of URL-sorted pages and accumulates the set of DOM
// subtree Signatures that recur across the domain into a DomainBoilerplate
// set. Transform then strips every subtree whose Signature is in that set
// from each page and yields a CleanedPage.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (htmldom/, jsonl/,
// sqlite/, htmltomarkdown/).
package deboiler
