// Package nointro mirrors the no-intro daily datfile bundle from
// datomatic.no-intro.org.
//
// The site gates the download behind two form submissions: the prepare
// page's form leads to a download page whose form yields the zip
// bundle. Every XML datfile under the No-Intro/ members is renamed to
// its header name and stored.
package nointro
