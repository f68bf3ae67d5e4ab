/*
Package setup builds the structured reference string (SRS) a KZG
commitment scheme is opened and verified against: the powers of a secret
s encoded in G1 up to some degree, plus [s]_2 in G2.

Source of the secret
====================================================================================================
The whole security of a KZG commitment rests on nobody knowing s after
the SRS has been derived. Generate and GenerateWithRandomSecret are
meant for tests and local experimentation. Generate uses the secret the
caller passes in and leaves disposing of it to the caller;
GenerateWithRandomSecret draws its own secret and overwrites it with
zeros as soon as the SRS is built.

For anything meant to be trusted by more than one party, the secret
instead has to come from a ceremony: many participants each contribute
randomness in turn, so that the final secret is unknown to everyone as
long as at least one contributor was honest and destroyed their share.
FromCeremony reads the output of one such ceremony.

The largest ceremony for BLS12-381 to date was run by the Ethereum
Foundation for Proto-danksharding (EIP-4844), with over 140,000
participants and public auditing tooling.

Learn more about it here:
https://ceremony.ethereum.org/
https://github.com/ethereum/kzg-ceremony

FromCeremony reads that ceremony's published transcript.json format. It
does not participate in a ceremony, audit one end to end, or speak the
ceremony's contribution protocol; it only parses the finished transcript
into the SRS shape this package's commitments and openings consume.
*/
package setup
