// Package webscrape extracts readable, structured content from rendered web
// pages. Given a page's rendered HTML (plus image and link side-channels
// captured during rendering), it strips boilerplate, selects the main content
// subtree, converts it to clean markdown, and mines the text for monetary
// amounts, dates, emails, phone numbers, tables, lists, and headings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, rod/).
package webscrape
