/*
Package flatset implements a disk-resident sorted set of variable-length byte strings in pure Go.
Values are stored as fixed-stride records in a flat file, sorted in place through a memory
mapping and queried by binary search directly against the mapped file.
*/
package flatset
