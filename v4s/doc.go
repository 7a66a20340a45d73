/*
Package v4s computes the V4S tetrahedral interaction index of water molecules
in a periodic orthorhombic box.

For every studied water the four ideal tetrahedral sites are rebuilt around
its oxygen (see geometry.PerfectTetrahedron). Every nearby atom, or whole
neighbor molecule when the atom is an oxygen, is assigned to the closest site
and its Lennard-Jones + Coulomb interaction with the studied molecule is
summed on that site. V4S is the largest of the four site sums.

Energies are in kJ/mol, lengths in Å and charges in units of e.
*/
package v4s
