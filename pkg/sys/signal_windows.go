package sys

import "os"

var interruptSignals = []os.Signal{os.Interrupt}
