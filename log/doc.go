/*
Package log implements the Bazaar logging façade on top of seelog.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
underlying logging levels.

A Logger owns one named channel. The channel renders every record with a
display pattern and writes it to its output (stdout unless configured
otherwise). Each of the four severities (info, warning, critical and error)
has its own gate: a closed gate silently drops the records of its severity
without formatting them. Gates are independent, there is no minimum level.

Patterns use the familiar spdlog flags (for example "[%n] [%l] %v") and are
translated into seelog formats when the channel is created.

As in the rest of Bazaar we log error conditions once, as early as possible:
Warning[f], Error[f] and Critical[f] return the logged message as an error,
so they can wrap errors from external packages (return l.Error(err)) or create
our own (return l.Errorf("store: key %q missing", key)). If we call panic()
we create the error for that with Critical[f]().

Channel names are unique within the process. The channel of a Logger is
released by Close, which makes its name available again.
*/
package log
