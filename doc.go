/*
Package tools provides command line tools for resolving molecular structure
files into named, selectable substructures used by torsion-angle based
comparison of RNA 3D models.

In most cases, command line tools are typically very small and only
representative of an interface to interact with the library packages in this
repository. In more exceptional circumstances where performance is needed, a
command line tool may use concurrency in an attempt to decrease execution
time.
*/
package tools
